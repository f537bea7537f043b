package dependency

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/eternal-wealth/toolkit/config"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: "test", LogLevel: "info", Port: 8080},
		Session: config.SessionConfig{
			Backend:         config.BackendMemory,
			TTL:             time.Hour,
			JanitorInterval: time.Minute,
		},
		Tracker: config.TrackerConfig{
			DefaultGoal: decimal.NewFromInt(1000),
			Milestone:   decimal.NewFromInt(20000),
			Locale:      "en-US",
			Currency:    "USD",
		},
		RateLimit: config.RateLimitConfig{SessionCreates: 20, Window: time.Minute},
	}
}

type apiClient struct {
	t      *testing.T
	engine *gin.Engine
}

func newAPIClient(t *testing.T) *apiClient {
	t.Helper()

	cfg := newTestConfig()
	storage, err := NewStorage(cfg)
	if err != nil {
		t.Fatalf("failed to open storage: %v", err)
	}
	injector, err := NewInjector(cfg, storage)
	if err != nil {
		t.Fatalf("failed to build injector: %v", err)
	}
	return &apiClient{t: t, engine: injector.Router.Setup(cfg.Server.Environment)}
}

func (c *apiClient) do(method, path string, body any) (int, map[string]any) {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c.engine.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			c.t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
		}
	}
	return w.Code, decoded
}

func (c *apiClient) startSession() string {
	c.t.Helper()

	code, body := c.do(http.MethodPost, "/api/v1/sessions", nil)
	if code != http.StatusCreated {
		c.t.Fatalf("expected 201 starting session, got %d", code)
	}
	session := body["session"].(map[string]any)
	return session["id"].(string)
}

func display(v any) string {
	return v.(map[string]any)["display"].(string)
}

func TestAPI_IncomeAndExpenses(t *testing.T) {
	client := newAPIClient(t)
	base := "/api/v1/sessions/" + client.startSession()

	code, body := client.do(http.MethodPost, base+"/income", map[string]string{"source": "Salary", "amount": "2,500.50"})
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %v", code, body)
	}
	if got := display(body["amount"]); got != "$2,500.50" {
		t.Errorf("expected $2,500.50, got %s", got)
	}

	for _, e := range []map[string]string{
		{"category": "Food", "amount": "50"},
		{"category": "Food", "amount": "30"},
		{"category": "Gas", "amount": "80"},
		{"category": "Rent", "amount": "1200"},
	} {
		if code, body := client.do(http.MethodPost, base+"/expenses", e); code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %v", code, body)
		}
	}

	t.Run("breakdown sorts categories and keeps first-seen order on ties", func(t *testing.T) {
		code, body := client.do(http.MethodGet, base+"/expenses/breakdown", nil)
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		categories := body["categories"].([]any)
		var names []string
		for _, c := range categories {
			names = append(names, c.(map[string]any)["category"].(string))
		}
		expected := []string{"Rent", "Food", "Gas"}
		if len(names) != len(expected) {
			t.Fatalf("expected %v, got %v", expected, names)
		}
		for i := range expected {
			if names[i] != expected[i] {
				t.Errorf("expected %v, got %v", expected, names)
				break
			}
		}
		leaks := body["money_leaks"].([]any)
		if len(leaks) != 2 {
			t.Errorf("expected 2 money leak categories, got %d", len(leaks))
		}
	})

	t.Run("invalid amount is rejected and nothing is stored", func(t *testing.T) {
		code, body := client.do(http.MethodPost, base+"/income", map[string]string{"source": "Gig", "amount": "abc"})
		if code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", code)
		}
		if body["code"] != "ENT-010002" {
			t.Errorf("expected ENT-010002, got %v", body["code"])
		}

		_, list := client.do(http.MethodGet, base+"/income", nil)
		if n := len(list["income"].([]any)); n != 1 {
			t.Errorf("expected 1 income entry, got %d", n)
		}
	})

	t.Run("dashboard reflects net savings", func(t *testing.T) {
		code, body := client.do(http.MethodGet, base+"/dashboard", nil)
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		if got := display(body["net_savings"]); got != "$1,140.50" {
			t.Errorf("expected $1,140.50, got %s", got)
		}
	})

	t.Run("removing an unknown entry is a 404", func(t *testing.T) {
		code, _ := client.do(http.MethodDelete, base+"/income/00000000-0000-0000-0000-000000000001", nil)
		if code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", code)
		}
	})
}

func TestAPI_SavingsAndChecklists(t *testing.T) {
	client := newAPIClient(t)
	base := "/api/v1/sessions/" + client.startSession()

	t.Run("negative fund is rejected", func(t *testing.T) {
		code, body := client.do(http.MethodPut, base+"/savings/fund", map[string]string{"amount": "-5"})
		if code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", code)
		}
		if body["code"] != "SAV-010002" {
			t.Errorf("expected SAV-010002, got %v", body["code"])
		}
	})

	t.Run("fund progress is clamped", func(t *testing.T) {
		code, body := client.do(http.MethodPut, base+"/savings/fund", map[string]string{"amount": "1500"})
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		progress := body["progress"].(map[string]any)
		if progress["rounded_percent"].(float64) != 100 {
			t.Errorf("expected 100, got %v", progress["rounded_percent"])
		}
		if progress["complete"] != true {
			t.Error("expected goal to be complete")
		}
	})

	t.Run("challenge total follows checked days", func(t *testing.T) {
		for _, key := range []string{"day-1", "day-3"} {
			code, _ := client.do(http.MethodPatch, base+"/checklists/challenge/items/"+key+"/toggle", nil)
			if code != http.StatusOK {
				t.Fatalf("expected 200 toggling %s, got %d", key, code)
			}
		}

		code, body := client.do(http.MethodGet, base+"/checklists/challenge", nil)
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		if got := display(body["challenge_total"]); got != "$4.00" {
			t.Errorf("expected $4.00, got %s", got)
		}
	})

	t.Run("unknown checklist is a 404", func(t *testing.T) {
		code, _ := client.do(http.MethodGet, base+"/checklists/bogus", nil)
		if code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", code)
		}
	})
}

func TestAPI_SessionLifecycle(t *testing.T) {
	client := newAPIClient(t)
	id := client.startSession()

	if code, _ := client.do(http.MethodGet, "/api/v1/sessions/not-a-uuid", nil); code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed id, got %d", code)
	}
	if code, _ := client.do(http.MethodDelete, "/api/v1/sessions/"+id, nil); code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", code)
	}
	if code, body := client.do(http.MethodGet, "/api/v1/sessions/"+id, nil); code != http.StatusNotFound || body["code"] != "SES-020001" {
		t.Errorf("expected 404 SES-020001 after end, got %d %v", code, body["code"])
	}

	code, body := client.do(http.MethodGet, "/api/v1/health", nil)
	if code != http.StatusOK || body["backend"] != config.BackendMemory {
		t.Errorf("expected healthy memory backend, got %d %v", code, body)
	}
}
