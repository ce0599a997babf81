// Package catalog holds the fixed set of screening questionnaires and their
// scoring semantics. Definitions are immutable and loaded once at startup;
// nothing here touches storage.
package catalog

import "errors"

// Subscale names an independently scored partition of a questionnaire.
type Subscale string

const (
	SubscaleAnxiety    Subscale = "anxiety"
	SubscaleDepression Subscale = "depression"
)

// Option is one discrete answer choice with its point value.
type Option struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// Question is an ordered questionnaire item. Subscale is set only for
// dual-scale tests (HADS).
type Question struct {
	Text     string   `json:"text"`
	Options  []Option `json:"options"`
	Subscale Subscale `json:"subscale,omitempty"`
}

// Band maps an inclusive lower score bound to an interpretation label.
// Bands are listed highest first; a score on a boundary belongs to the
// higher band.
type Band struct {
	Min  int
	Text string
}

// Scored is the outcome of scoring one completed questionnaire.
type Scored struct {
	Total           int
	Interpretation  string
	Subscales       map[Subscale]int
	Interpretations map[Subscale]string
}

// Scoring maps a completed answer list to its interpretation. The set of
// implementations is closed: totalScoring for MMSE and Zung, subscaleScoring
// for HADS.
type Scoring interface {
	score(t *Test, answers []int) Scored
}

// Test is a static questionnaire definition.
type Test struct {
	ID          string
	Name        string
	Description string
	Questions   []Question
	scoring     Scoring
}

var ErrAnswerCount = errors.New("answer count does not match question count")

// Score computes the total, subscale totals where applicable, and the
// interpretation labels for a complete answer list.
func (t *Test) Score(answers []int) (Scored, error) {
	if len(answers) != len(t.Questions) {
		return Scored{}, ErrAnswerCount
	}
	return t.scoring.score(t, answers), nil
}

// ValidAnswer reports whether score is the point value of one of the
// options of the given question.
func (t *Test) ValidAnswer(question, score int) bool {
	if question < 0 || question >= len(t.Questions) {
		return false
	}
	for _, o := range t.Questions[question].Options {
		if o.Score == score {
			return true
		}
	}
	return false
}

// OptionText resolves the option label a stored point value corresponds to.
// When several options share a value the first one in catalog order wins.
func (t *Test) OptionText(question, score int) (string, bool) {
	if question < 0 || question >= len(t.Questions) {
		return "", false
	}
	for _, o := range t.Questions[question].Options {
		if o.Score == score {
			return o.Text, true
		}
	}
	return "", false
}

// SubscaleScores partitions answers by question subscale and sums each
// partition. ok is false for single-scale tests. The result is derivable
// from answers alone, which the legacy-record migration relies on.
func (t *Test) SubscaleScores(answers []int) (map[Subscale]int, bool) {
	ds, ok := t.scoring.(subscaleScoring)
	if !ok {
		return nil, false
	}
	if len(answers) != len(t.Questions) {
		return nil, false
	}
	return ds.totals(t, answers), true
}

// InterpretSubscale maps a subscale total to its band label. ok is false
// for single-scale tests and unknown subscales.
func (t *Test) InterpretSubscale(sub Subscale, score int) (string, bool) {
	ds, ok := t.scoring.(subscaleScoring)
	if !ok {
		return "", false
	}
	bands, ok := ds.bands[sub]
	if !ok {
		return "", false
	}
	return interpretBands(bands, score), true
}

// DualScale reports whether the test is scored on independent subscales.
func (t *Test) DualScale() bool {
	_, ok := t.scoring.(subscaleScoring)
	return ok
}

// Sum is the total score of an answer list.
func Sum(answers []int) int {
	total := 0
	for _, a := range answers {
		total += a
	}
	return total
}

func interpretBands(bands []Band, score int) string {
	for _, b := range bands {
		if score >= b.Min {
			return b.Text
		}
	}
	return bands[len(bands)-1].Text
}

// totalScoring interprets the plain answer total, optionally normalized
// first (Zung maps its 20-80 raw range onto a 0-100 index).
type totalScoring struct {
	bands     []Band
	normalize func(raw int) int
}

func (ts totalScoring) score(t *Test, answers []int) Scored {
	total := Sum(answers)
	banded := total
	if ts.normalize != nil {
		banded = ts.normalize(total)
	}
	return Scored{Total: total, Interpretation: interpretBands(ts.bands, banded)}
}

// subscaleScoring interprets each subscale partition independently.
type subscaleScoring struct {
	bands map[Subscale][]Band
}

func (ds subscaleScoring) totals(t *Test, answers []int) map[Subscale]int {
	totals := map[Subscale]int{}
	for sub := range ds.bands {
		totals[sub] = 0
	}
	for i, q := range t.Questions {
		totals[q.Subscale] += answers[i]
	}
	return totals
}

func (ds subscaleScoring) score(t *Test, answers []int) Scored {
	totals := ds.totals(t, answers)
	interps := map[Subscale]string{}
	for sub, total := range totals {
		interps[sub] = interpretBands(ds.bands[sub], total)
	}
	return Scored{Total: Sum(answers), Subscales: totals, Interpretations: interps}
}

var tests = []*Test{mmse, hads, zung}

var byID = func() map[string]*Test {
	m := make(map[string]*Test, len(tests))
	for _, t := range tests {
		m[t.ID] = t
	}
	return m
}()

// Get looks a test up by id.
func Get(id string) (*Test, bool) {
	t, ok := byID[id]
	return t, ok
}

// All returns the catalog in its fixed order.
func All() []*Test {
	return append([]*Test(nil), tests...)
}
