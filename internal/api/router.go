package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avmaksimov/psycab/internal/catalog"
	"github.com/avmaksimov/psycab/internal/services"
)

const birthDateLayout = "2006-01-02"

type Router struct {
	repo     *services.Repository
	sessions *services.SessionService
	reports  *services.ReportService
	exports  *services.ExportService
	backup   *services.BackupService
	settings *services.SettingsService
	analyses *services.AnalysisService
}

func NewRouter(
	repo *services.Repository,
	sessions *services.SessionService,
	reports *services.ReportService,
	exports *services.ExportService,
	backup *services.BackupService,
	settings *services.SettingsService,
	analyses *services.AnalysisService,
) *Router {
	return &Router{
		repo:     repo,
		sessions: sessions,
		reports:  reports,
		exports:  exports,
		backup:   backup,
		settings: settings,
		analyses: analyses,
	}
}

func (rt *Router) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/clients", rt.handleClients)        // GET, POST
	mux.HandleFunc("/api/clients/", rt.handleClientScoped)  // GET/PUT/DELETE {id}, {id}/results, {id}/analyses
	mux.HandleFunc("/api/tests", rt.handleTests)            // GET
	mux.HandleFunc("/api/tests/", rt.handleTest)            // GET {id}
	mux.HandleFunc("/api/sessions", rt.handleSessions)      // POST
	mux.HandleFunc("/api/sessions/", rt.handleSessionScoped)
	mux.HandleFunc("/api/reports/summary", rt.handleSummaryReport)
	mux.HandleFunc("/api/reports/detailed", rt.handleDetailedReport)
	mux.HandleFunc("/api/export/csv", rt.handleExportCSV)
	mux.HandleFunc("/api/export/archive", rt.handleExportArchive)
	mux.HandleFunc("/api/backup", rt.handleBackup) // GET, POST
	mux.HandleFunc("/api/settings", rt.handleSettings)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if se, ok := services.AsServiceError(err); ok {
		switch se.Code {
		case services.ErrorInvalid, services.ErrorNoAPIKey, services.ErrorNoResults:
			status = http.StatusBadRequest
		case services.ErrorNotFound:
			status = http.StatusNotFound
		case services.ErrorConflict:
			status = http.StatusConflict
		case services.ErrorBadGateway, services.ErrorMalformedResponse:
			status = http.StatusBadGateway
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func (rt *Router) handleClients(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		clients, err := rt.repo.Clients()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, clients)
	case http.MethodPost:
		var req struct {
			Name      string `json:"name"`
			BirthDate string `json:"birth_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, services.NewInvalidError(err.Error()))
			return
		}
		birth, err := time.Parse(birthDateLayout, req.BirthDate)
		if err != nil {
			writeError(w, services.NewInvalidError("birth_date must be YYYY-MM-DD"))
			return
		}
		c, err := rt.repo.AddClient(req.Name, birth)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, c)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (rt *Router) handleClientScoped(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/clients/")
	parts := strings.Split(rest, "/")
	id := parts[0]
	if id == "" {
		http.NotFound(w, r)
		return
	}
	if len(parts) == 1 {
		rt.handleClient(w, r, id)
		return
	}
	switch parts[1] {
	case "results":
		results, err := rt.repo.ResultsByClient(id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, results)
	case "analyses":
		rt.handleClientAnalyses(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (rt *Router) handleClient(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		c, err := rt.repo.GetClient(id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, c)
	case http.MethodPut:
		var req struct {
			Name      string `json:"name"`
			BirthDate string `json:"birth_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, services.NewInvalidError(err.Error()))
			return
		}
		upd := &services.Client{ID: id, Name: req.Name}
		if req.BirthDate != "" {
			birth, err := time.Parse(birthDateLayout, req.BirthDate)
			if err != nil {
				writeError(w, services.NewInvalidError("birth_date must be YYYY-MM-DD"))
				return
			}
			upd.BirthDate = birth
		}
		if err := rt.repo.UpdateClient(upd); err != nil {
			writeError(w, err)
			return
		}
		c, err := rt.repo.GetClient(id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, c)
	case http.MethodDelete:
		if err := rt.repo.DeleteClient(id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, map[string]bool{"ok": true})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (rt *Router) handleClientAnalyses(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		analyses, err := rt.repo.AnalysesByClient(id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, analyses)
	case http.MethodPost:
		analysis, err := rt.analyses.Generate(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, analysis)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

type testView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	QuestionCount int    `json:"question_count"`
	DualScale     bool   `json:"dual_scale"`
}

func (rt *Router) handleTests(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	out := []testView{}
	for _, t := range catalog.All() {
		out = append(out, testView{
			ID:            t.ID,
			Name:          t.Name,
			Description:   t.Description,
			QuestionCount: len(t.Questions),
			DualScale:     t.DualScale(),
		})
	}
	writeJSON(w, out)
}

func (rt *Router) handleTest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/tests/")
	t, ok := catalog.Get(id)
	if !ok {
		writeError(w, services.NewNotFoundError("unknown test: "+id))
		return
	}
	writeJSON(w, map[string]any{
		"id":          t.ID,
		"name":        t.Name,
		"description": t.Description,
		"questions":   t.Questions,
	})
}

func (rt *Router) handleSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		ClientID string `json:"client_id"`
		TestID   string `json:"test_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, services.NewInvalidError(err.Error()))
		return
	}
	state, err := rt.sessions.Start(req.ClientID, req.TestID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, state)
}

func (rt *Router) handleSessionScoped(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	parts := strings.Split(rest, "/")
	id := parts[0]
	if id == "" {
		http.NotFound(w, r)
		return
	}
	if len(parts) == 1 {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		state, err := rt.sessions.Get(id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, state)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch parts[1] {
	case "answer":
		var req struct {
			Value *int `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, services.NewInvalidError(err.Error()))
			return
		}
		if req.Value == nil {
			writeError(w, services.NewInvalidError("value required"))
			return
		}
		state, err := rt.sessions.Answer(id, *req.Value)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, state)
	case "back":
		state, err := rt.sessions.Back(id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, state)
	default:
		http.NotFound(w, r)
	}
}

func (rt *Router) handleSummaryReport(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("client_id")
	if clientID == "" {
		writeError(w, services.NewInvalidError("client_id required"))
		return
	}
	text, err := rt.reports.Summary(clientID, r.URL.Query()["result_id"])
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, text)
}

func (rt *Router) handleDetailedReport(w http.ResponseWriter, r *http.Request) {
	resultID := r.URL.Query().Get("result_id")
	if resultID == "" {
		writeError(w, services.NewInvalidError("result_id required"))
		return
	}
	text, err := rt.reports.Detailed(resultID)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, text)
}

func (rt *Router) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	res, err := rt.exports.ExportCSV()
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+res.Filename)
	_, _ = w.Write(res.Data)
}

func (rt *Router) handleExportArchive(w http.ResponseWriter, r *http.Request) {
	res, err := rt.exports.ExportArchive()
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+res.Filename)
	_, _ = w.Write(res.Data)
}

func (rt *Router) handleBackup(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		data, err := rt.backup.Export()
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", "attachment; filename=psycab-backup.json")
		_, _ = w.Write(data)
	case http.MethodPost:
		data, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, services.NewInvalidError(err.Error()))
			return
		}
		if err := rt.backup.Import(data); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, map[string]bool{"ok": true})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (rt *Router) handleSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		settings, err := rt.settings.Get()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, settings)
	case http.MethodPut:
		var in services.Settings
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, services.NewInvalidError(err.Error()))
			return
		}
		if err := rt.settings.Update(&in); err != nil {
			writeError(w, err)
			return
		}
		settings, err := rt.settings.Get()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, settings)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
