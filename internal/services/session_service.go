package services

import (
	"sync"
	"time"

	"github.com/avmaksimov/psycab/internal/catalog"
)

// SessionStore abstracts the persistence operations the session workflow needs.
type SessionStore interface {
	GetClient(id string) (*Client, error)
	AddResult(res *Result) error
}

// session is one in-progress questionnaire administration. Sessions are
// held per id in the service registry, never as process-wide state, so
// several administrations can run side by side.
type session struct {
	id       string
	clientID string
	test     *catalog.Test
	answers  []int
}

// SessionState is the externally visible snapshot of a session after a
// transition. Completed and Aborted are terminal; a completed state carries
// the id of the persisted result.
type SessionState struct {
	ID            string             `json:"id"`
	ClientID      string             `json:"clientId"`
	TestID        string             `json:"testId"`
	QuestionIndex int                `json:"questionIndex"`
	QuestionCount int                `json:"questionCount"`
	Question      *catalog.Question  `json:"question,omitempty"`
	Completed     bool               `json:"completed"`
	Aborted       bool               `json:"aborted"`
	ResultID      string             `json:"resultId,omitempty"`
}

// SessionService walks a client through one questionnaire: answers
// accumulate, Back pops, and the final answer scores and persists a Result.
type SessionService struct {
	store SessionStore
	mu    sync.Mutex
	open  map[string]*session
	now   func() time.Time
}

func NewSessionService(store SessionStore) *SessionService {
	return &SessionService{
		store: store,
		open:  map[string]*session{},
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *SessionService) snapshot(sess *session) *SessionState {
	q := sess.test.Questions[len(sess.answers)]
	return &SessionState{
		ID:            sess.id,
		ClientID:      sess.clientID,
		TestID:        sess.test.ID,
		QuestionIndex: len(sess.answers),
		QuestionCount: len(sess.test.Questions),
		Question:      &q,
	}
}

// Start opens a session for the client at question 0 with no answers.
func (s *SessionService) Start(clientID, testID string) (*SessionState, error) {
	if _, err := s.store.GetClient(clientID); err != nil {
		return nil, err
	}
	test, ok := catalog.Get(testID)
	if !ok {
		return nil, NewNotFoundError("unknown test: " + testID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &session{id: NewID(s.now()), clientID: clientID, test: test}
	s.open[sess.id] = sess
	return s.snapshot(sess), nil
}

// Get returns the current state of an open session.
func (s *SessionService) Get(sessionID string) (*SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.open[sessionID]
	if !ok {
		return nil, NewNotFoundError("session not found")
	}
	return s.snapshot(sess), nil
}

// Answer records the selected point value for the current question. A value
// that is not an option of that question is rejected. Answering the last
// question scores the test, persists the Result, and closes the session;
// completion is terminal and one-shot.
func (s *SessionService) Answer(sessionID string, value int) (*SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.open[sessionID]
	if !ok {
		return nil, NewNotFoundError("session not found")
	}
	current := len(sess.answers)
	if !sess.test.ValidAnswer(current, value) {
		return nil, NewInvalidError("value is not an option of the current question")
	}
	sess.answers = append(sess.answers, value)
	if len(sess.answers) < len(sess.test.Questions) {
		return s.snapshot(sess), nil
	}

	scored, err := sess.test.Score(sess.answers)
	if err != nil {
		return nil, err
	}
	now := s.now()
	res := &Result{
		ID:       NewID(now),
		ClientID: sess.clientID,
		TestID:   sess.test.ID,
		Date:     now,
		Score:    scored.Total,
		Answers:  append([]int(nil), sess.answers...),
	}
	if sess.test.DualScale() {
		res.Scores = map[string]int{}
		res.Interpretations = map[string]string{}
		for sub, total := range scored.Subscales {
			res.Scores[string(sub)] = total
			res.Interpretations[string(sub)] = scored.Interpretations[sub]
		}
	} else {
		res.Interpretation = scored.Interpretation
	}
	if err := s.store.AddResult(res); err != nil {
		// keep the last answer off the session so the caller can retry
		sess.answers = sess.answers[:len(sess.answers)-1]
		return nil, err
	}
	delete(s.open, sessionID)
	return &SessionState{
		ID:            sess.id,
		ClientID:      sess.clientID,
		TestID:        sess.test.ID,
		QuestionIndex: len(sess.test.Questions),
		QuestionCount: len(sess.test.Questions),
		Completed:     true,
		ResultID:      res.ID,
	}, nil
}

// Back pops the last answer and returns to the previous question. At
// question 0 it aborts the session instead.
func (s *SessionService) Back(sessionID string) (*SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.open[sessionID]
	if !ok {
		return nil, NewNotFoundError("session not found")
	}
	if len(sess.answers) == 0 {
		delete(s.open, sessionID)
		return &SessionState{
			ID:            sess.id,
			ClientID:      sess.clientID,
			TestID:        sess.test.ID,
			QuestionCount: len(sess.test.Questions),
			Aborted:       true,
		}, nil
	}
	sess.answers = sess.answers[:len(sess.answers)-1]
	return s.snapshot(sess), nil
}
