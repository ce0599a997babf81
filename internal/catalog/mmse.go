package catalog

var yesNo = func(yes, no string) []Option {
	return []Option{{Text: yes, Score: 1}, {Text: no, Score: 0}}
}

var correctIncorrect = yesNo("Правильный ответ", "Неправильный ответ")

var mmse = &Test{
	ID:          "mmse",
	Name:        "MMSE",
	Description: "Краткая шкала оценки психического статуса",
	Questions: []Question{
		// Ориентировка во времени (5 баллов)
		{Text: "Какой сейчас год?", Options: correctIncorrect},
		{Text: "Какое сейчас время года?", Options: correctIncorrect},
		{Text: "Какое сегодня число?", Options: correctIncorrect},
		{Text: "Какой сегодня день недели?", Options: correctIncorrect},
		{Text: "Какой сейчас месяц?", Options: correctIncorrect},
		// Ориентировка в месте (5 баллов)
		{Text: "В какой мы стране?", Options: correctIncorrect},
		{Text: "В какой области/крае мы находимся?", Options: correctIncorrect},
		{Text: "В каком городе мы находимся?", Options: correctIncorrect},
		{Text: "Как называется это учреждение?", Options: correctIncorrect},
		{Text: "На каком мы этаже?", Options: correctIncorrect},
		// Восприятие (3 балла)
		{Text: "Повторите три слова: ЯБЛОКО, СТОЛ, МОНЕТА (первая попытка)", Options: []Option{
			{Text: "Повторил все 3 слова", Score: 3},
			{Text: "Повторил 2 слова", Score: 2},
			{Text: "Повторил 1 слово", Score: 1},
			{Text: "Не повторил ни одного", Score: 0},
		}},
		// Внимание и счет (5 баллов)
		{Text: "Серийный счет: от 100 отнять 7 (первый раз)", Options: yesNo("Правильно: 93", "Неправильно")},
		{Text: "От результата отнять еще 7 (второй раз)", Options: yesNo("Правильно: 86", "Неправильно")},
		{Text: "Продолжайте вычитать по 7 (третий раз)", Options: yesNo("Правильно: 79", "Неправильно")},
		{Text: "Продолжайте вычитать по 7 (четвертый раз)", Options: yesNo("Правильно: 72", "Неправильно")},
		{Text: "Продолжайте вычитать по 7 (пятый раз)", Options: yesNo("Правильно: 65", "Неправильно")},
		// Память (3 балла)
		{Text: "Вспомните три слова, которые я просил запомнить", Options: []Option{
			{Text: "Вспомнил все 3 слова", Score: 3},
			{Text: "Вспомнил 2 слова", Score: 2},
			{Text: "Вспомнил 1 слово", Score: 1},
			{Text: "Не вспомнил ни одного", Score: 0},
		}},
		// Речь (2 балла)
		{Text: "Покажите ручку. Как это называется?", Options: yesNo("Правильно назвал", "Неправильно")},
		{Text: "Покажите часы. Как это называется?", Options: yesNo("Правильно назвал", "Неправильно")},
		// Повторение фразы (1 балл)
		{Text: "Повторите фразу: \"Никаких если, и или но\"", Options: yesNo("Повторил правильно", "Не смог повторить")},
		// Понимание команд (3 балла)
		{Text: "Трехэтапная команда: \"Возьмите лист бумаги правой рукой\"", Options: yesNo("Выполнил правильно", "Не выполнил")},
		{Text: "Сложите его пополам", Options: yesNo("Выполнил правильно", "Не выполнил")},
		{Text: "Положите его на стол", Options: yesNo("Выполнил правильно", "Не выполнил")},
		// Чтение (1 балл)
		{Text: "Прочитайте и выполните: \"ЗАКРОЙТЕ ГЛАЗА\"", Options: yesNo("Прочитал и выполнил", "Не выполнил")},
		// Письмо (1 балл)
		{Text: "Напишите любое предложение", Options: yesNo("Написал осмысленное предложение", "Не написал")},
		// Рисование (1 балл)
		{Text: "Перерисуйте рисунок (два пересекающихся пятиугольника)", Options: yesNo("Перерисовал правильно", "Не справился")},
	},
	scoring: totalScoring{bands: []Band{
		{Min: 28, Text: "Норма (28-30 баллов): Когнитивные функции в пределах нормы"},
		{Min: 24, Text: "Преддементные когнитивные нарушения (24-27 баллов)"},
		{Min: 20, Text: "Деменция легкой степени (20-23 балла)"},
		{Min: 11, Text: "Деменция умеренной степени (11-19 баллов)"},
		{Min: 0, Text: "Тяжелая деменция (0-10 баллов)"},
	}},
}
