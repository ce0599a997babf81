package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/avmaksimov/psycab/internal/catalog"
)

const dateLayout = "02.01.2006"

var sectionSeparator = strings.Repeat("=", 60)

// SummaryProtocol renders a plain-text protocol: a header with the client's
// data followed by one section per result.
func SummaryProtocol(client *Client, results []*Result, now time.Time) string {
	var b strings.Builder
	writeProtocolHeader(&b, client, now)
	for _, res := range results {
		writeResultSection(&b, res)
	}
	return b.String()
}

// DetailedProtocol renders one result with every question and the selected
// option text, resolved by matching the stored point value against the
// catalog (first match in catalog order).
func DetailedProtocol(client *Client, res *Result, now time.Time) string {
	var b strings.Builder
	writeProtocolHeader(&b, client, now)
	writeResultSection(&b, res)
	test, ok := catalog.Get(res.TestID)
	if !ok || len(res.Answers) != len(test.Questions) {
		return b.String()
	}
	b.WriteString("Ответы:\n")
	for i, q := range test.Questions {
		text, ok := test.OptionText(i, res.Answers[i])
		if !ok {
			text = "—"
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Text)
		fmt.Fprintf(&b, "   Ответ: %s (баллов: %d)\n", text, res.Answers[i])
	}
	return b.String()
}

func writeProtocolHeader(b *strings.Builder, client *Client, now time.Time) {
	b.WriteString(sectionSeparator + "\n")
	b.WriteString("ПРОТОКОЛ ПСИХОДИАГНОСТИЧЕСКОГО ОБСЛЕДОВАНИЯ\n")
	b.WriteString(sectionSeparator + "\n")
	fmt.Fprintf(b, "Клиент: %s\n", client.Name)
	fmt.Fprintf(b, "Дата рождения: %s\n", client.BirthDate.Format(dateLayout))
	fmt.Fprintf(b, "Дата составления: %s\n\n", now.Format(dateLayout))
}

func writeResultSection(b *strings.Builder, res *Result) {
	name, description := res.TestID, ""
	if test, ok := catalog.Get(res.TestID); ok {
		name, description = test.Name, test.Description
	}
	b.WriteString(sectionSeparator + "\n")
	if description != "" {
		fmt.Fprintf(b, "%s (%s)\n", name, description)
	} else {
		b.WriteString(name + "\n")
	}
	b.WriteString(sectionSeparator + "\n")
	fmt.Fprintf(b, "Дата тестирования: %s\n", res.Date.Format(dateLayout))
	fmt.Fprintf(b, "Балл: %d\n", res.Score)
	if len(res.Scores) > 0 {
		for _, sub := range []catalog.Subscale{catalog.SubscaleAnxiety, catalog.SubscaleDepression} {
			label := subscaleLabel(sub)
			fmt.Fprintf(b, "%s: %d — %s\n", label, res.Scores[string(sub)], res.Interpretations[string(sub)])
		}
	} else {
		fmt.Fprintf(b, "Интерпретация: %s\n", res.Interpretation)
	}
	b.WriteString("\n")
}

func subscaleLabel(sub catalog.Subscale) string {
	switch sub {
	case catalog.SubscaleAnxiety:
		return "Тревога"
	case catalog.SubscaleDepression:
		return "Депрессия"
	default:
		return string(sub)
	}
}

// resultSummaryLine renders one result the way the AI prompt expects it.
func resultSummaryLine(res *Result) string {
	name, description := res.TestID, ""
	if test, ok := catalog.Get(res.TestID); ok {
		name, description = test.Name, test.Description
	}
	interp := res.Interpretation
	if len(res.Interpretations) > 0 {
		parts := make([]string, 0, 2)
		for _, sub := range []catalog.Subscale{catalog.SubscaleAnxiety, catalog.SubscaleDepression} {
			if text, ok := res.Interpretations[string(sub)]; ok {
				parts = append(parts, fmt.Sprintf("%s %d — %s", strings.ToLower(subscaleLabel(sub)), res.Scores[string(sub)], text))
			}
		}
		interp = strings.Join(parts, "; ")
	}
	return fmt.Sprintf("%s (%s):\nБалл: %d\nДата: %s\nИнтерпретация: %s",
		name, description, res.Score, res.Date.Format(dateLayout), interp)
}
