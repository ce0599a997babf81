package catalog

import "math"

// Zung items are scored 1-4; "direct" items count symptom frequency upward,
// "reverse" items downward. The raw 20-80 total is remapped to a 0-100
// depression index before banding. Rounding (not truncation) keeps the band
// edges aligned with the paper form.
var zungDirect = []Option{
	{Text: "Никогда или изредка", Score: 1},
	{Text: "Иногда", Score: 2},
	{Text: "Часто", Score: 3},
	{Text: "Почти всегда или постоянно", Score: 4},
}

var zungReverse = []Option{
	{Text: "Никогда или изредка", Score: 4},
	{Text: "Иногда", Score: 3},
	{Text: "Часто", Score: 2},
	{Text: "Почти всегда или постоянно", Score: 1},
}

func zungIndex(raw int) int {
	return int(math.Round(float64(raw) / 80 * 100))
}

var zung = &Test{
	ID:          "zung",
	Name:        "Шкала Цунга",
	Description: "Шкала самооценки депрессии Цунга",
	Questions: []Question{
		{Text: "1. Я чувствую подавленность, тоску", Options: zungDirect},
		{Text: "2. Утром я чувствую себя лучше всего", Options: zungReverse},
		{Text: "3. У меня бывают периоды плача или близости к слезам", Options: zungDirect},
		{Text: "4. У меня плохой ночной сон", Options: zungDirect},
		{Text: "5. Аппетит у меня не хуже обычного", Options: zungReverse},
		{Text: "6. Мне приятно общаться с привлекательными людьми, находиться рядом с ними", Options: zungReverse},
		{Text: "7. Я замечаю, что теряю вес", Options: zungDirect},
		{Text: "8. Меня беспокоят запоры", Options: zungDirect},
		{Text: "9. Сердце бьется быстрее, чем обычно", Options: zungDirect},
		{Text: "10. Я устаю без всяких причин", Options: zungDirect},
		{Text: "11. Я мыслю так же ясно, как всегда", Options: zungReverse},
		{Text: "12. Мне легко делать то, что я умею", Options: zungReverse},
		{Text: "13. Я чувствую беспокойство и не могу усидеть на месте", Options: zungDirect},
		{Text: "14. У меня есть надежды на будущее", Options: zungReverse},
		{Text: "15. Я более раздражителен, чем обычно", Options: zungDirect},
		{Text: "16. Мне легко принимать решения", Options: zungReverse},
		{Text: "17. Я чувствую, что полезен и необходим", Options: zungReverse},
		{Text: "18. Я живу достаточно полной жизнью", Options: zungReverse},
		{Text: "19. Я чувствую, что другим людям станет лучше, если я умру", Options: zungDirect},
		{Text: "20. Меня до сих пор радует то, что радовало всегда", Options: zungReverse},
	},
	scoring: totalScoring{
		normalize: zungIndex,
		bands: []Band{
			{Min: 70, Text: "Истинное депрессивное состояние (индекс 70 и выше)"},
			{Min: 60, Text: "Субдепрессивное состояние или маскированная депрессия (индекс 60-69)"},
			{Min: 50, Text: "Легкая депрессия ситуативного или невротического генеза (индекс 50-59)"},
			{Min: 0, Text: "Состояние без депрессии (индекс менее 50)"},
		},
	},
}
