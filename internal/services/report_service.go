package services

import "time"

// ReportStore abstracts the lookups report rendering needs.
type ReportStore interface {
	GetClient(id string) (*Client, error)
	GetResult(id string) (*Result, error)
	ResultsByClient(clientID string) ([]*Result, error)
}

type ReportService struct {
	store ReportStore
	now   func() time.Time
}

func NewReportService(store ReportStore) *ReportService {
	return &ReportService{store: store, now: func() time.Time { return time.Now().UTC() }}
}

// Summary renders the summary protocol for a client. When resultIDs is
// non-empty only the named results are included, in stored order.
func (s *ReportService) Summary(clientID string, resultIDs []string) (string, error) {
	client, err := s.store.GetClient(clientID)
	if err != nil {
		return "", err
	}
	results, err := s.store.ResultsByClient(clientID)
	if err != nil {
		return "", err
	}
	if len(resultIDs) > 0 {
		wanted := make(map[string]struct{}, len(resultIDs))
		for _, id := range resultIDs {
			wanted[id] = struct{}{}
		}
		filtered := results[:0]
		for _, res := range results {
			if _, ok := wanted[res.ID]; ok {
				filtered = append(filtered, res)
			}
		}
		results = filtered
	}
	return SummaryProtocol(client, results, s.now()), nil
}

// Detailed renders the per-question protocol for one result.
func (s *ReportService) Detailed(resultID string) (string, error) {
	res, err := s.store.GetResult(resultID)
	if err != nil {
		return "", err
	}
	client, err := s.store.GetClient(res.ClientID)
	if err != nil {
		return "", err
	}
	return DetailedProtocol(client, res, s.now()), nil
}
