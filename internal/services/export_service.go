package services

import "time"

// ExportStore abstracts the data the export workflows read.
type ExportStore interface {
	Clients() ([]*Client, error)
	ResultsByClient(clientID string) ([]*Result, error)
	Analyses() ([]*Analysis, error)
}

type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ExportService struct {
	store ExportStore
	now   func() time.Time
}

func NewExportService(store ExportStore) *ExportService {
	return &ExportService{store: store, now: func() time.Time { return time.Now().UTC() }}
}

// ExportCSV renders the whole client base as a tabular report: one row per
// (client, result), one row for clients without results.
func (s *ExportService) ExportCSV() (*ExportResult, error) {
	clients, err := s.store.Clients()
	if err != nil {
		return nil, err
	}
	now := s.now()
	byClient := make(map[string][]*Result, len(clients))
	ages := make(map[string]int, len(clients))
	for _, c := range clients {
		results, err := s.store.ResultsByClient(c.ID)
		if err != nil {
			return nil, err
		}
		byClient[c.ID] = results
		ages[c.ID] = AgeYears(c.BirthDate, now)
	}
	data, err := ExportResultsCSV(BuildCSVRows(clients, byClient, ages))
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		Filename:    "results_" + now.Format("2006-01-02") + ".csv",
		ContentType: "text/csv; charset=utf-8",
		Data:        data,
	}, nil
}

// ExportArchive bundles every stored AI analysis into a zip archive.
func (s *ExportService) ExportArchive() (*ExportResult, error) {
	analyses, err := s.store.Analyses()
	if err != nil {
		return nil, err
	}
	if len(analyses) == 0 {
		return nil, NewNoResultsError("no analyses to export")
	}
	data, err := ExportAnalysesArchive(analyses)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		Filename:    "analyses_" + s.now().Format("2006-01-02") + ".zip",
		ContentType: "application/zip",
		Data:        data,
	}, nil
}
