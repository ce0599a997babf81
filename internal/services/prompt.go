package services

import (
	"strconv"
	"strings"
	"time"
)

// The prompt is a fixed template; only the client data, the rendered
// results and the dynamics hint are substituted.
const promptTemplate = `
Ты — опытный клинический психолог с 15-летним стажем работы с пожилыми пациентами.

ДАННЫЕ КЛИЕНТА:
- ФИО: {clientName}
- Возраст: {clientAge} лет
- Дата обследования: {testDate}

РЕЗУЛЬТАТЫ ПСИХОДИАГНОСТИКИ:

{testResults}

ЗАДАНИЕ:
Проанализируй результаты и составь профессиональное психологическое заключение.

ТРЕБОВАНИЯ К ЗАКЛЮЧЕНИЮ:

1. Структура (строго):

   ## КОГНИТИВНЫЙ СТАТУС
   [Детальный анализ когнитивных тестов (MMSE и подобных):
   - Конкретные цифры и отклонения от нормы
   - Какие функции нарушены (память, внимание, речь и т.д.)
   - Степень выраженности нарушений
   - Возможные причины с учётом возраста]

   ## ЭМОЦИОНАЛЬНОЕ СОСТОЯНИЕ
   [Анализ эмоциональных тестов (HADS, Цунга и подобных):
   - Уровень тревоги и/или депрессии
   - Как это влияет на повседневную жизнь
   - Связь с когнитивными показателями]

   ## ВЗАИМОСВЯЗИ И ДИНАМИКА
   [Как показатели разных тестов связаны между собой:
   - Влияет ли когнитивное снижение на эмоции
   - Влияет ли депрессия/тревога на когнитивные функции
   - {hasDynamics}]

   ## ФАКТОРЫ РИСКА
   [Что может ухудшить текущее состояние:
   - Медицинские факторы (сопутствующие заболевания, лекарства)
   - Психосоциальные факторы (одиночество, стресс, потеря близких)
   - Образ жизни (недостаток активности, плохое питание, нарушения сна)
   - Возрастные факторы
   - Отсутствие лечения или наблюдения]

   ## РЕКОМЕНДАЦИИ
   [Минимум 5 конкретных рекомендаций с обоснованием:
   - К каким специалистам обратиться (невролог, психиатр, психотерапевт)
   - Какие дополнительные обследования провести (МРТ, анализы и т.д.)
   - Методы психотерапии (КПТ, поддерживающая терапия и т.д.)
   - Когнитивный тренинг и упражнения
   - Медикаментозная поддержка (если показана)
   - Социальная поддержка и активность]

   ## ПРОГНОЗ
   [Ожидаемая динамика состояния:
   - Благоприятный сценарий (при выполнении рекомендаций)
   - Вероятное течение без вмешательства
   - Факторы, влияющие на прогноз
   - Временные рамки ожидаемых изменений]

   ## ПЛАН НАБЛЮДЕНИЯ
   [Конкретный план мониторинга:
   - Когда повторить психодиагностическое тестирование (через 3/6/12 месяцев)
   - Какие тесты повторить обязательно
   - Какие дополнительные тесты провести
   - Частота консультаций со специалистами
   - Критерии улучшения/ухудшения, требующие внимания]

   ## ОСОБЫЕ ОТМЕТКИ
   [Что требует срочного/приоритетного внимания, срочные риски]

2. Стиль написания:
   - Профессиональный медицинский язык, но понятный для коллег
   - Конкретные цифры, проценты, ссылки на нормативы
   - БЕЗ общих фраз типа "обратитесь к врачу" — только конкретика
   - Учитывай возраст клиента и возрастные нормы
   - Избегай категоричных диагнозов, используй "возможно", "вероятно"

3. Примеры ХОРОШИХ рекомендаций:
   ✅ "Консультация невролога для дифференциальной диагностики между сосудистой деменцией и болезнью Альцгеймера. Рекомендовано МРТ головного мозга с контрастом"
   ✅ "Когнитивно-поведенческая терапия 2 раза в неделю по 50 минут с фокусом на работе с тревожными мыслями и поведенческой активации"
   ✅ "Медикаментозная поддержка: рассмотреть назначение донепезила 5мг/сут после консультации с психиатром/неврологом"
   ✅ "Когнитивный тренинг: упражнения на кратковременную память (запоминание списков, игры на внимание) 20-30 минут ежедневно"

4. Примеры ПЛОХИХ рекомендаций (не пиши так):
   ❌ "Обратитесь к врачу"
   ❌ "Рекомендуется лечение"
   ❌ "Необходима терапия"
   ❌ "Нужно обследование"

5. Обязательно учитывай:
   - Возраст клиента (норма для 70 лет ≠ норма для 50 лет)
   - Комбинацию симптомов (когнитивное снижение + депрессия часто усиливают друг друга)
   - Риск прогрессирования
   - Качество жизни пациента
   - Реалистичность прогноза

Генерируй ТОЛЬКО текст заключения в формате Markdown, без вступлений и пояснений.
Начинай сразу с "## КОГНИТИВНЫЙ СТАТУС".
`

const (
	dynamicsHint   = "Проанализируй динамику: сравни результаты с предыдущими тестированиями и оцени изменения (улучшение/ухудшение/стабильность)"
	noDynamicsHint = "Динамический анализ не требуется (первичное обследование)"
)

// hasDynamics is true when any test was administered more than once, so
// there are repeated administrations to compare.
func hasDynamics(results []*Result) bool {
	seen := map[string]bool{}
	for _, res := range results {
		if seen[res.TestID] {
			return true
		}
		seen[res.TestID] = true
	}
	return false
}

func buildPrompt(client *Client, results []*Result, now time.Time) string {
	rendered := make([]string, 0, len(results))
	for _, res := range results {
		rendered = append(rendered, resultSummaryLine(res))
	}
	hint := noDynamicsHint
	if hasDynamics(results) {
		hint = dynamicsHint
	}
	replacer := strings.NewReplacer(
		"{clientName}", client.Name,
		"{clientAge}", strconv.Itoa(AgeYears(client.BirthDate, now)),
		"{testDate}", now.Format(dateLayout),
		"{testResults}", strings.Join(rendered, "\n\n"),
		"{hasDynamics}", hint,
	)
	return replacer.Replace(promptTemplate)
}
