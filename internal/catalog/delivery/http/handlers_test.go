package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"escrow-marketplace/internal/catalog/usecase"
	"escrow-marketplace/internal/event"
	"escrow-marketplace/internal/middleware"
	"escrow-marketplace/internal/repository/memory"
	"escrow-marketplace/pkg/clock"
	"escrow-marketplace/pkg/log"
)

const sellerAddr = "0x00000000000000000000000000000000000000a1"

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, event.Event) {}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	uc := usecase.New(memory.New(l), nopPublisher{}, clock.NewFixed(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)), l)

	engine := gin.New()
	mw := middleware.New(l, nil, middleware.Config{TrustHeader: true, RateLimitPerMin: 6000})
	RegisterRoutes(engine.Group("/api/v1"), New(l, uc), mw)
	return engine
}

func do(engine *gin.Engine, method, path, caller, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req.Header.Set("X-Caller-Address", caller)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestList(t *testing.T) {
	tests := []struct {
		name       string
		caller     string
		body       string
		wantStatus int
	}{
		{name: "ok", caller: sellerAddr, body: `{"name":"Notes","description":"Lecture notes","price":"100"}`, wantStatus: http.StatusCreated},
		{name: "no caller", body: `{"name":"Notes","description":"Lecture notes","price":"100"}`, wantStatus: http.StatusUnauthorized},
		{name: "empty name", caller: sellerAddr, body: `{"name":" ","description":"d","price":"1"}`, wantStatus: http.StatusBadRequest},
		{name: "zero price", caller: sellerAddr, body: `{"name":"n","description":"d","price":"0"}`, wantStatus: http.StatusBadRequest},
		{name: "price not a number", caller: sellerAddr, body: `{"name":"n","description":"d","price":"ten"}`, wantStatus: http.StatusBadRequest},
		{name: "malformed json", caller: sellerAddr, body: `{`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newTestRouter(t), http.MethodPost, "/api/v1/items", tt.caller, tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestQueries(t *testing.T) {
	engine := newTestRouter(t)
	for _, name := range []string{"A", "B"} {
		body := `{"name":"` + name + `","description":"d","price":"1.5","metadata_ref":"ipfs://x"}`
		if w := do(engine, http.MethodPost, "/api/v1/items", sellerAddr, body); w.Code != http.StatusCreated {
			t.Fatalf("list %s: %d", name, w.Code)
		}
	}

	w := do(engine, http.MethodGet, "/api/v1/items/2", "", "")
	var item struct {
		Data itemResp `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &item)
	if w.Code != http.StatusOK || item.Data.Name != "B" || item.Data.Price != "1.5" || item.Data.Status != "AVAILABLE" {
		t.Errorf("detail: %d %+v", w.Code, item.Data)
	}

	if w := do(engine, http.MethodGet, "/api/v1/items/3", "", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown item: %d", w.Code)
	}
	if w := do(engine, http.MethodGet, "/api/v1/items/0", "", ""); w.Code != http.StatusBadRequest {
		t.Errorf("zero id: %d", w.Code)
	}

	for path, want := range map[string]int{
		"/api/v1/items":           2,
		"/api/v1/items/available": 2,
	} {
		w := do(engine, http.MethodGet, path, "", "")
		var list struct {
			Data itemsResp `json:"data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &list)
		if w.Code != http.StatusOK || list.Data.Count != want {
			t.Errorf("%s: %d count %d", path, w.Code, list.Data.Count)
		}
	}

	w = do(engine, http.MethodGet, "/api/v1/me/listed", sellerAddr, "")
	var mine struct {
		Data itemsResp `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &mine)
	if w.Code != http.StatusOK || mine.Data.Count != 2 {
		t.Errorf("me/listed: %d %+v", w.Code, mine.Data)
	}

	if w := do(engine, http.MethodGet, "/api/v1/me/purchased", "", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("me/purchased without caller: %d", w.Code)
	}
}
