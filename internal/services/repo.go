package services

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/avmaksimov/psycab/internal/catalog"
	"github.com/avmaksimov/psycab/internal/storage"
)

// Repository provides typed accessors over the key-value store for the
// three collections. All read-modify-write sequences run under one mutex
// so concurrent HTTP handlers cannot lose updates.
type Repository struct {
	store storage.Store
	log   zerolog.Logger
	mu    sync.Mutex
	now   func() time.Time
}

func NewRepository(store storage.Store, log zerolog.Logger) *Repository {
	return &Repository{
		store: store,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// NewID returns a time-ordered unique token: millisecond timestamp plus a
// short random suffix.
func NewID(at time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return strconv.FormatInt(at.UnixMilli(), 10) + "-" + suffix
}

func (r *Repository) loadClients() []*Client {
	clients := []*Client{}
	if err := r.store.Get(storage.KeyClients, &clients); err != nil {
		r.log.Error().Err(err).Msg("load clients")
	}
	return clients
}

func (r *Repository) loadResults() []*Result {
	results := []*Result{}
	if err := r.store.Get(storage.KeyResults, &results); err != nil {
		r.log.Error().Err(err).Msg("load results")
	}
	return r.migrateLegacyHADS(results)
}

func (r *Repository) loadAnalyses() []*Analysis {
	analyses := []*Analysis{}
	if err := r.store.Get(storage.KeyAnalyses, &analyses); err != nil {
		r.log.Error().Err(err).Msg("load analyses")
	}
	return analyses
}

// migrateLegacyHADS backfills subscale scores and interpretations for HADS
// results saved before dual-scale scoring existed. It runs only here, on
// repository read, and is idempotent: records that already carry scores are
// left alone.
func (r *Repository) migrateLegacyHADS(results []*Result) []*Result {
	migrated := 0
	for _, res := range results {
		if res.TestID != "hads" || len(res.Scores) > 0 || len(res.Answers) == 0 {
			continue
		}
		test, ok := catalog.Get(res.TestID)
		if !ok {
			continue
		}
		totals, ok := test.SubscaleScores(res.Answers)
		if !ok {
			continue
		}
		res.Scores = map[string]int{}
		res.Interpretations = map[string]string{}
		for sub, total := range totals {
			res.Scores[string(sub)] = total
			if text, ok := test.InterpretSubscale(sub, total); ok {
				res.Interpretations[string(sub)] = text
			}
		}
		migrated++
	}
	if migrated > 0 {
		if err := r.store.Set(storage.KeyResults, results); err != nil {
			r.log.Error().Err(err).Msg("persist migrated results")
		} else {
			r.log.Info().Int("count", migrated).Msg("backfilled legacy HADS results")
		}
	}
	return results
}

func (r *Repository) Clients() ([]*Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadClients(), nil
}

func (r *Repository) GetClient(id string) (*Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.loadClients() {
		if c.ID == id {
			copy := *c
			return &copy, nil
		}
	}
	return nil, NewNotFoundError("client not found")
}

func (r *Repository) AddClient(name string, birthDate time.Time) (*Client, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewInvalidError("name required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	c := &Client{ID: NewID(now), Name: strings.TrimSpace(name), BirthDate: birthDate, AddedDate: now}
	clients := append(r.loadClients(), c)
	if err := r.store.Set(storage.KeyClients, clients); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Repository) UpdateClient(upd *Client) error {
	if upd == nil || upd.ID == "" {
		return NewInvalidError("client id required")
	}
	if strings.TrimSpace(upd.Name) == "" {
		return NewInvalidError("name required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clients := r.loadClients()
	for i, c := range clients {
		if c.ID == upd.ID {
			updated := *c
			updated.Name = strings.TrimSpace(upd.Name)
			if !upd.BirthDate.IsZero() {
				updated.BirthDate = upd.BirthDate
			}
			clients[i] = &updated
			return r.store.Set(storage.KeyClients, clients)
		}
	}
	return NewNotFoundError("client not found")
}

// DeleteClient removes the client and every result that references it, so
// no orphaned results survive.
func (r *Repository) DeleteClient(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clients := r.loadClients()
	kept := clients[:0]
	found := false
	for _, c := range clients {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return NewNotFoundError("client not found")
	}
	if err := r.store.Set(storage.KeyClients, kept); err != nil {
		return err
	}
	results := r.loadResults()
	keptResults := results[:0]
	for _, res := range results {
		if res.ClientID != id {
			keptResults = append(keptResults, res)
		}
	}
	return r.store.Set(storage.KeyResults, keptResults)
}

func (r *Repository) Results() ([]*Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadResults(), nil
}

func (r *Repository) GetResult(id string) (*Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range r.loadResults() {
		if res.ID == id {
			copy := *res
			return &copy, nil
		}
	}
	return nil, NewNotFoundError("result not found")
}

func (r *Repository) ResultsByClient(clientID string) ([]*Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*Result{}
	for _, res := range r.loadResults() {
		if res.ClientID == clientID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *Repository) AddResult(res *Result) error {
	if res == nil || res.ClientID == "" || res.TestID == "" {
		return NewInvalidError("result requires client and test ids")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	results := append(r.loadResults(), res)
	return r.store.Set(storage.KeyResults, results)
}

func (r *Repository) AnalysesByClient(clientID string) ([]*Analysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*Analysis{}
	for _, a := range r.loadAnalyses() {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *Repository) Analyses() ([]*Analysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadAnalyses(), nil
}

func (r *Repository) GetAnalysis(id string) (*Analysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.loadAnalyses() {
		if a.ID == id {
			copy := *a
			return &copy, nil
		}
	}
	return nil, NewNotFoundError("analysis not found")
}

func (r *Repository) AddAnalysis(a *Analysis) error {
	if a == nil || a.ClientID == "" {
		return NewInvalidError("analysis requires a client id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	analyses := append(r.loadAnalyses(), a)
	return r.store.Set(storage.KeyAnalyses, analyses)
}
