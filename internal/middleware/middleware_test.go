package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"escrow-marketplace/pkg/log"
	"escrow-marketplace/pkg/scope"
)

const caller = "0x00000000000000000000000000000000000000Ab"

func newTestRouter(t *testing.T, mw Middleware) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/who", mw.Auth(), mw.RateLimit(), func(c *gin.Context) {
		sc, _ := scope.GetScopeFromContext(c.Request.Context())
		c.String(http.StatusOK, sc.Address)
	})
	return r
}

func TestAuth(t *testing.T) {
	mgr, err := scope.New("secret", "test")
	if err != nil {
		t.Fatalf("scope.New: %v", err)
	}
	token, err := mgr.CreateToken(caller, time.Hour)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	other, _ := scope.New("other-secret", "test")
	forged, _ := other.CreateToken(caller, time.Hour)

	tests := []struct {
		name        string
		trustHeader bool
		headers     map[string]string
		wantStatus  int
		wantBody    string
	}{
		{name: "bearer token", headers: map[string]string{"Authorization": "Bearer " + token}, wantStatus: http.StatusOK, wantBody: "0x00000000000000000000000000000000000000ab"},
		{name: "forged token", headers: map[string]string{"Authorization": "Bearer " + forged}, wantStatus: http.StatusUnauthorized},
		{name: "non-bearer scheme", headers: map[string]string{"Authorization": "Basic abc"}, wantStatus: http.StatusUnauthorized},
		{name: "no identity", wantStatus: http.StatusUnauthorized},
		{name: "header ignored when untrusted", headers: map[string]string{"X-Caller-Address": caller}, wantStatus: http.StatusUnauthorized},
		{name: "trusted header", trustHeader: true, headers: map[string]string{"X-Caller-Address": caller}, wantStatus: http.StatusOK, wantBody: "0x00000000000000000000000000000000000000ab"},
		{name: "trusted header malformed", trustHeader: true, headers: map[string]string{"X-Caller-Address": "alice"}, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, New(log.NewNop(), mgr, Config{TrustHeader: tt.trustHeader, RateLimitPerMin: 600}))

			req := httptest.NewRequest(http.MethodGet, "/who", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Error("expected X-Request-ID response header")
			}
		})
	}
}

func TestRateLimitPerCaller(t *testing.T) {
	// 10 per minute gives a burst of exactly one request.
	r := newTestRouter(t, New(log.NewNop(), nil, Config{TrustHeader: true, RateLimitPerMin: 10}))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/who", nil)
		req.Header.Set("X-Caller-Address", addr)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do(caller); code != http.StatusOK {
		t.Fatalf("first request: %d", code)
	}
	if code := do(caller); code != http.StatusTooManyRequests {
		t.Fatalf("second request: got %d, want 429", code)
	}
	if code := do("0x00000000000000000000000000000000000000cd"); code != http.StatusOK {
		t.Fatalf("other caller should have its own bucket, got %d", code)
	}
}

func TestRequestIDReusesClientValue(t *testing.T) {
	r := newTestRouter(t, New(log.NewNop(), nil, Config{TrustHeader: true}))

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set("X-Caller-Address", caller)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("X-Request-ID = %q", got)
	}
}

func TestRateLimiterConcurrentFirstRequests(t *testing.T) {
	// 6 per minute gives a burst of one token.
	rl := newRateLimiter(6)

	var allowed atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if rl.Allow("caller:"+caller) == nil {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := allowed.Load(); got != 1 {
		t.Errorf("expected exactly one request through, got %d", got)
	}
}
