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
	"github.com/shopspring/decimal"

	"escrow-marketplace/internal/escrow/usecase"
	"escrow-marketplace/internal/event"
	ledgerUC "escrow-marketplace/internal/ledger/usecase"
	"escrow-marketplace/internal/middleware"
	repo "escrow-marketplace/internal/repository"
	"escrow-marketplace/internal/repository/memory"
	"escrow-marketplace/pkg/clock"
	"escrow-marketplace/pkg/log"
)

const (
	ownerAddr  = "0x00000000000000000000000000000000000000f0"
	sellerAddr = "0x00000000000000000000000000000000000000a1"
	buyerAddr  = "0x00000000000000000000000000000000000000b2"
)

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, event.Event) {}

func newTestRouter(t *testing.T) (*gin.Engine, repo.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	r := memory.New(l)
	clk := clock.NewFixed(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	uc := usecase.New(r, ledgerUC.New(r, clk, l), nopPublisher{}, clk, ownerAddr, l)

	if _, err := r.CreateItem(context.Background(), repo.CreateItemOptions{
		Name: "Notes", Description: "Desc", Price: decimal.NewFromInt(100), Seller: sellerAddr,
	}); err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	engine := gin.New()
	mw := middleware.New(l, nil, middleware.Config{TrustHeader: true, RateLimitPerMin: 6000})
	RegisterRoutes(engine.Group("/api/v1"), New(l, uc), mw)
	return engine, r
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

func TestRequestPurchaseStatuses(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		caller     string
		body       string
		wantStatus int
	}{
		{name: "no caller", path: "/api/v1/items/1/purchase", body: `{"paid":"100"}`, wantStatus: http.StatusUnauthorized},
		{name: "bad id", path: "/api/v1/items/x/purchase", caller: buyerAddr, body: `{"paid":"100"}`, wantStatus: http.StatusBadRequest},
		{name: "bad paid", path: "/api/v1/items/1/purchase", caller: buyerAddr, body: `{"paid":"lots"}`, wantStatus: http.StatusBadRequest},
		{name: "paid with 19 decimals", path: "/api/v1/items/1/purchase", caller: buyerAddr, body: `{"paid":"100.0000000000000000001"}`, wantStatus: http.StatusBadRequest},
		{name: "missing paid", path: "/api/v1/items/1/purchase", caller: buyerAddr, body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "unknown item", path: "/api/v1/items/9/purchase", caller: buyerAddr, body: `{"paid":"100"}`, wantStatus: http.StatusNotFound},
		{name: "self purchase", path: "/api/v1/items/1/purchase", caller: sellerAddr, body: `{"paid":"100"}`, wantStatus: http.StatusForbidden},
		{name: "underpaid", path: "/api/v1/items/1/purchase", caller: buyerAddr, body: `{"paid":"99.99"}`, wantStatus: http.StatusPaymentRequired},
		{name: "ok", path: "/api/v1/items/1/purchase", caller: buyerAddr, body: `{"paid":"150"}`, wantStatus: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, _ := newTestRouter(t)
			w := do(engine, http.MethodPost, tt.path, tt.caller, tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestPurchaseAndResolveFlow(t *testing.T) {
	engine, _ := newTestRouter(t)

	w := do(engine, http.MethodPost, "/api/v1/items/1/purchase", buyerAddr, `{"paid":"150"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("purchase: %d %s", w.Code, w.Body.String())
	}
	var purchase struct {
		Data purchaseResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &purchase); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if purchase.Data.PendingPurchaseID != 1 || purchase.Data.Refunded != "50" || purchase.Data.PendingPurchase.AmountHeld != "100" {
		t.Errorf("unexpected purchase %+v", purchase.Data)
	}
	if purchase.Data.Item.Status != "PENDING" {
		t.Errorf("item status = %s", purchase.Data.Item.Status)
	}

	// A second buyer sees the item is taken.
	if w := do(engine, http.MethodPost, "/api/v1/items/1/purchase", "0x00000000000000000000000000000000000000c3", `{"paid":"100"}`); w.Code != http.StatusConflict {
		t.Errorf("second purchase: %d", w.Code)
	}

	w = do(engine, http.MethodGet, "/api/v1/pending-purchases", "", "")
	var list struct {
		Data pendingListResp `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if w.Code != http.StatusOK || list.Data.Count != 1 {
		t.Errorf("list: %d %+v", w.Code, list.Data)
	}

	if w := do(engine, http.MethodPost, "/api/v1/pending-purchases/1/approve", buyerAddr, ""); w.Code != http.StatusForbidden {
		t.Errorf("approve by buyer: %d", w.Code)
	}
	if w := do(engine, http.MethodPost, "/api/v1/pending-purchases/5/approve", ownerAddr, ""); w.Code != http.StatusNotFound {
		t.Errorf("approve unknown: %d", w.Code)
	}

	w = do(engine, http.MethodPost, "/api/v1/pending-purchases/1/approve", ownerAddr, "")
	if w.Code != http.StatusOK {
		t.Fatalf("approve: %d %s", w.Code, w.Body.String())
	}
	var resolved struct {
		Data resolveResp `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resolved)
	if resolved.Data.PendingPurchase.Status != "APPROVED" || resolved.Data.Item.Status != "SOLD" || resolved.Data.Item.Buyer == "" {
		t.Errorf("unexpected resolve %+v", resolved.Data)
	}

	if w := do(engine, http.MethodPost, "/api/v1/pending-purchases/1/reject", ownerAddr, ""); w.Code != http.StatusConflict {
		t.Errorf("reject after approve: %d", w.Code)
	}

	w = do(engine, http.MethodGet, "/api/v1/pending-purchases/1", "", "")
	var detail struct {
		Data detailResp `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &detail)
	if w.Code != http.StatusOK || detail.Data.Held != "0" || detail.Data.PendingPurchase.ResolvedAt == nil {
		t.Errorf("detail: %d %+v", w.Code, detail.Data)
	}
}

func TestOwner(t *testing.T) {
	engine, _ := newTestRouter(t)
	w := do(engine, http.MethodGet, "/api/v1/owner", "", "")

	var body struct {
		Data ownerResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w.Code != http.StatusOK || !strings.EqualFold(body.Data.Owner, ownerAddr) {
		t.Errorf("owner: %d %+v", w.Code, body.Data)
	}
}
