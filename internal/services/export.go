package services

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/avmaksimov/psycab/internal/catalog"
)

// utf8BOM keeps Excel happy with Cyrillic CSV content.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVRow is one (client, result) pair; a client with no results still
// produces a row with the test fields empty.
type CSVRow struct {
	ClientName     string
	BirthDate      string
	Age            string
	TestName       string
	Date           string
	Score          string
	Interpretation string
	Recommendation string
}

var csvHeader = []string{
	"Клиент", "Дата рождения", "Возраст", "Тест", "Дата тестирования",
	"Балл", "Интерпретация", "Рекомендации",
}

// ExportResultsCSV renders rows as semicolon-delimited UTF-8 CSV with a BOM
// and one header row.
func ExportResultsCSV(rows []CSVRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.Write(utf8BOM)
	w := csv.NewWriter(buf)
	w.Comma = ';'
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		rec := []string{
			r.ClientName, r.BirthDate, r.Age, r.TestName, r.Date,
			r.Score, r.Interpretation, r.Recommendation,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// recommendationBands mirrors the interpretation tables but is maintained
// separately: the cut points do not always coincide with the interpret
// bands and are kept as the original application shipped them.
var recommendationBands = map[string][]catalog.Band{
	"mmse": {
		{Min: 28, Text: "Профилактические когнитивные тренировки, повторный скрининг через год"},
		{Min: 24, Text: "Консультация невролога, когнитивный тренинг, контроль через 6 месяцев"},
		{Min: 20, Text: "Консультация невролога и психиатра, МРТ головного мозга"},
		{Min: 10, Text: "Наблюдение психиатра, подбор терапии, поддержка родственников"},
		{Min: 0, Text: "Постоянный уход и наблюдение специалистов"},
	},
	"hads": {
		{Min: 11, Text: "Рекомендована консультация психотерапевта или психиатра"},
		{Min: 8, Text: "Рекомендована консультация психолога, освоение техник релаксации"},
		{Min: 0, Text: "Состояние в пределах нормы, повторный скрининг по показаниям"},
	},
	"zung": {
		{Min: 70, Text: "Рекомендована консультация психиатра"},
		{Min: 60, Text: "Рекомендована консультация психотерапевта"},
		{Min: 50, Text: "Рекомендована консультация психолога"},
		{Min: 0, Text: "Депрессивная симптоматика не выявлена"},
	},
}

// RecommendationFor maps a result to its recommendation text. HADS is keyed
// on the worse of the two subscale totals; Zung on the normalized index.
func RecommendationFor(res *Result) string {
	bands, ok := recommendationBands[res.TestID]
	if !ok {
		return ""
	}
	score := res.Score
	switch res.TestID {
	case "hads":
		score = 0
		for _, v := range res.Scores {
			if v > score {
				score = v
			}
		}
	case "zung":
		score = int(float64(res.Score)/80*100 + 0.5)
	}
	for _, b := range bands {
		if score >= b.Min {
			return b.Text
		}
	}
	return bands[len(bands)-1].Text
}

// BuildCSVRows produces one row per result plus one row per client with no
// results at all.
func BuildCSVRows(clients []*Client, resultsByClient map[string][]*Result, ages map[string]int) []CSVRow {
	rows := []CSVRow{}
	for _, c := range clients {
		results := resultsByClient[c.ID]
		if len(results) == 0 {
			rows = append(rows, CSVRow{
				ClientName: c.Name,
				BirthDate:  c.BirthDate.Format(dateLayout),
				Age:        strconv.Itoa(ages[c.ID]),
			})
			continue
		}
		for _, res := range results {
			name := res.TestID
			if test, ok := catalog.Get(res.TestID); ok {
				name = test.Name
			}
			interp := res.Interpretation
			if len(res.Interpretations) > 0 {
				interp = fmt.Sprintf("Тревога: %s; Депрессия: %s",
					res.Interpretations[string(catalog.SubscaleAnxiety)],
					res.Interpretations[string(catalog.SubscaleDepression)])
			}
			rows = append(rows, CSVRow{
				ClientName:     c.Name,
				BirthDate:      c.BirthDate.Format(dateLayout),
				Age:            strconv.Itoa(ages[c.ID]),
				TestName:       name,
				Date:           res.Date.Format(dateLayout),
				Score:          strconv.Itoa(res.Score),
				Interpretation: interp,
				Recommendation: RecommendationFor(res),
			})
		}
	}
	return rows
}

// ExportAnalysesArchive bundles every analysis as one text file in a zip.
func ExportAnalysesArchive(analyses []*Analysis) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, a := range analyses {
		name := fmt.Sprintf("analysis_%s_%s.txt", a.ID, a.Date.Format("2006-01-02"))
		f, err := zw.Create(name)
		if err != nil {
			return nil, err
		}
		if _, err := f.Write([]byte(a.Text)); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
