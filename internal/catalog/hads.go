package catalog

// HADS items alternate between the anxiety and depression subscales
// (odd items anxiety, even items depression); each subscale is banded
// independently on its 0-21 range.
var hads = &Test{
	ID:          "hads",
	Name:        "HADS",
	Description: "Госпитальная шкала тревоги и депрессии",
	Questions: []Question{
		{Text: "1. Я испытываю напряжение, мне не по себе", Subscale: SubscaleAnxiety, Options: []Option{
			{Text: "Все время", Score: 3},
			{Text: "Часто", Score: 2},
			{Text: "Иногда", Score: 1},
			{Text: "Совсем не испытываю", Score: 0},
		}},
		{Text: "2. То, что приносило мне удовольствие, и сейчас вызывает то же чувство", Subscale: SubscaleDepression, Options: []Option{
			{Text: "Определенно это так", Score: 0},
			{Text: "Наверное, это так", Score: 1},
			{Text: "Лишь в очень малой степени", Score: 2},
			{Text: "Это совсем не так", Score: 3},
		}},
		{Text: "3. Я испытываю страх, кажется, будто что-то ужасное может вот-вот случиться", Subscale: SubscaleAnxiety, Options: []Option{
			{Text: "Определенно это так, и страх очень сильный", Score: 3},
			{Text: "Да, это так, но страх не очень сильный", Score: 2},
			{Text: "Иногда, но это меня не беспокоит", Score: 1},
			{Text: "Совсем не испытываю", Score: 0},
		}},
		{Text: "4. Я способен рассмеяться и увидеть в том или ином событии смешное", Subscale: SubscaleDepression, Options: []Option{
			{Text: "Определенно это так", Score: 0},
			{Text: "Наверное, это так", Score: 1},
			{Text: "Лишь в очень малой степени", Score: 2},
			{Text: "Совсем не способен", Score: 3},
		}},
		{Text: "5. Беспокойные мысли крутятся у меня в голове", Subscale: SubscaleAnxiety, Options: []Option{
			{Text: "Постоянно", Score: 3},
			{Text: "Большую часть времени", Score: 2},
			{Text: "Время от времени", Score: 1},
			{Text: "Только иногда", Score: 0},
		}},
		{Text: "6. Я испытываю бодрость", Subscale: SubscaleDepression, Options: []Option{
			{Text: "Совсем не испытываю", Score: 3},
			{Text: "Очень редко", Score: 2},
			{Text: "Иногда", Score: 1},
			{Text: "Практически все время", Score: 0},
		}},
		{Text: "7. Я легко могу сесть и расслабиться", Subscale: SubscaleAnxiety, Options: []Option{
			{Text: "Определенно это так", Score: 0},
			{Text: "Наверное, это так", Score: 1},
			{Text: "Лишь изредка это так", Score: 2},
			{Text: "Совсем не могу", Score: 3},
		}},
		{Text: "8. Мне кажется, что я стал все делать очень медленно", Subscale: SubscaleDepression, Options: []Option{
			{Text: "Практически все время", Score: 3},
			{Text: "Часто", Score: 2},
			{Text: "Иногда", Score: 1},
			{Text: "Совсем нет", Score: 0},
		}},
		{Text: "9. Я испытываю внутреннее напряжение или дрожь", Subscale: SubscaleAnxiety, Options: []Option{
			{Text: "Совсем не испытываю", Score: 0},
			{Text: "Иногда", Score: 1},
			{Text: "Часто", Score: 2},
			{Text: "Очень часто", Score: 3},
		}},
		{Text: "10. Я не слежу за своей внешностью", Subscale: SubscaleDepression, Options: []Option{
			{Text: "Определенно это так", Score: 3},
			{Text: "Я не уделяю этому столько времени, сколько нужно", Score: 2},
			{Text: "Может быть, я стал меньше уделять этому внимания", Score: 1},
			{Text: "Я слежу за собой так же, как и раньше", Score: 0},
		}},
		{Text: "11. Я испытываю неусидчивость, словно мне постоянно нужно двигаться", Subscale: SubscaleAnxiety, Options: []Option{
			{Text: "Определенно это так", Score: 3},
			{Text: "Наверное, это так", Score: 2},
			{Text: "Лишь в некоторой степени", Score: 1},
			{Text: "Совсем не испытываю", Score: 0},
		}},
		{Text: "12. Я считаю, что мои дела (занятия, увлечения) могут принести мне чувство удовлетворения", Subscale: SubscaleDepression, Options: []Option{
			{Text: "Точно так же, как и обычно", Score: 0},
			{Text: "Да, но не в той степени, как раньше", Score: 1},
			{Text: "Значительно меньше, чем обычно", Score: 2},
			{Text: "Совсем не считаю", Score: 3},
		}},
		{Text: "13. У меня бывает внезапное чувство паники", Subscale: SubscaleAnxiety, Options: []Option{
			{Text: "Очень часто", Score: 3},
			{Text: "Довольно часто", Score: 2},
			{Text: "Не так уж часто", Score: 1},
			{Text: "Совсем не бывает", Score: 0},
		}},
		{Text: "14. Я могу получить удовольствие от хорошей книги, радио- или телепрограммы", Subscale: SubscaleDepression, Options: []Option{
			{Text: "Часто", Score: 0},
			{Text: "Иногда", Score: 1},
			{Text: "Редко", Score: 2},
			{Text: "Очень редко", Score: 3},
		}},
	},
	scoring: subscaleScoring{bands: map[Subscale][]Band{
		SubscaleAnxiety: {
			{Min: 11, Text: "Клинически выраженная тревога (11 баллов и выше)"},
			{Min: 8, Text: "Субклинически выраженная тревога (8-10 баллов)"},
			{Min: 0, Text: "Норма (0-7 баллов)"},
		},
		SubscaleDepression: {
			{Min: 11, Text: "Клинически выраженная депрессия (11 баллов и выше)"},
			{Min: 8, Text: "Субклинически выраженная депрессия (8-10 баллов)"},
			{Min: 0, Text: "Норма (0-7 баллов)"},
		},
	}},
}
