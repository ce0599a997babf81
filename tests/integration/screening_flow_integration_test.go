//go:build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func baseURL() string {
	if v := os.Getenv("PSYCAB_TEST_BASE_URL"); strings.TrimSpace(v) != "" {
		return strings.TrimRight(v, "/")
	}
	return "http://127.0.0.1:8080"
}

// TestScreeningFlowIntegration walks the full cabinet workflow against a
// running server: create a client, administer HADS, read the report, export
// the CSV, and delete the client.
func TestScreeningFlowIntegration(t *testing.T) {
	client := &http.Client{Timeout: 5 * time.Second}
	base := baseURL()

	var created struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	doPost(t, client, base+"/api/clients", map[string]string{
		"name":       "Интеграционный Тест",
		"birth_date": "1950-03-12",
	}, &created)
	if created.ID == "" {
		t.Fatalf("unexpected create response: %+v", created)
	}
	defer func() {
		req, _ := http.NewRequest(http.MethodDelete, base+"/api/clients/"+created.ID, nil)
		resp, err := client.Do(req)
		if err == nil {
			resp.Body.Close()
		}
	}()

	var session struct {
		ID            string `json:"id"`
		QuestionCount int    `json:"questionCount"`
	}
	doPost(t, client, base+"/api/sessions", map[string]string{
		"client_id": created.ID,
		"test_id":   "hads",
	}, &session)
	if session.ID == "" || session.QuestionCount != 14 {
		t.Fatalf("unexpected session: %+v", session)
	}

	var state struct {
		Completed bool   `json:"completed"`
		ResultID  string `json:"resultId"`
	}
	for i := 0; i < session.QuestionCount; i++ {
		doPost(t, client, base+"/api/sessions/"+session.ID+"/answer", map[string]int{"value": 0}, &state)
	}
	if !state.Completed || state.ResultID == "" {
		t.Fatalf("session did not complete: %+v", state)
	}

	report := doGetText(t, client, base+"/api/reports/detailed?result_id="+state.ResultID)
	if !strings.Contains(report, "ПРОТОКОЛ ПСИХОДИАГНОСТИЧЕСКОГО ОБСЛЕДОВАНИЯ") {
		t.Fatalf("report missing header:\n%s", report)
	}
	if !strings.Contains(report, "Интеграционный Тест") {
		t.Fatalf("report missing client name:\n%s", report)
	}

	csvBody := doGetText(t, client, base+"/api/export/csv")
	if !strings.Contains(csvBody, "Интеграционный Тест") {
		t.Fatalf("export missing client row:\n%s", csvBody)
	}
}

func doPost(t *testing.T, client *http.Client, url string, body any, out any) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("http post %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		t.Fatalf("unexpected status %d for %s: %s", resp.StatusCode, url, string(bodyBytes))
	}
	if out != nil {
		decoder := json.NewDecoder(resp.Body)
		if err := decoder.Decode(out); err != nil && err != io.EOF {
			t.Fatalf("decode response from %s: %v", url, err)
		}
	}
}

func doGetText(t *testing.T, client *http.Client, url string) string {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("http get %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response from %s: %v", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d for %s: %s", resp.StatusCode, url, string(bodyBytes))
	}
	return string(bodyBytes)
}
