package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/league-stats/internal/domain/user"
	"github.com/riskibarqy/league-stats/internal/usecase"
)

type stubVerifier struct {
	principal user.Principal
	err       error
}

func (v *stubVerifier) VerifyAccessToken(context.Context, string) (user.Principal, error) {
	return v.principal, v.err
}

func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromContext(r.Context())
		if !ok || principal.UserID != "user-1" {
			t.Fatalf("principal missing from context: %+v ok=%v", principal, ok)
		}
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireAuth(&stubVerifier{}, next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/seasons", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/seasons", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		RequireAuth(&stubVerifier{}, next).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("verifier failure propagates", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/seasons", nil)
		req.Header.Set("Authorization", "Bearer abc")
		rec := httptest.NewRecorder()
		verifier := &stubVerifier{err: fmt.Errorf("%w: token expired", usecase.ErrUnauthorized)}
		RequireAuth(verifier, next).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("valid token passes principal", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/seasons", nil)
		req.Header.Set("Authorization", "Bearer abc")
		rec := httptest.NewRecorder()
		verifier := &stubVerifier{principal: user.Principal{UserID: "user-1"}}
		RequireAuth(verifier, next).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("no principal rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/seasons", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("non-admin rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/seasons", nil)
		req = req.WithContext(withPrincipal(req.Context(), user.Principal{UserID: "user-1"}))
		rec := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/seasons", nil)
		req = req.WithContext(withPrincipal(req.Context(), user.Principal{UserID: "user-1", IsAdmin: true}))
		rec := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}

func TestRequireInternalToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("unconfigured token is unavailable", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireInternalToken("", next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/internal/refresh", nil))
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/internal/refresh", nil)
		req.Header.Set("X-Internal-Token", "nope")
		rec := httptest.NewRecorder()
		RequireInternalToken("secret", next).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("matching token passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/internal/refresh", nil)
		req.Header.Set("X-Internal-Token", "secret")
		rec := httptest.NewRecorder()
		RequireInternalToken("secret", next).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}

func TestCORS_OptionsPreflight(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"*"}, next)

	req := httptest.NewRequest(http.MethodOptions, "/v1/stats/leaderboards", nil)
	req.Header.Set("Origin", "https://league-stats-fe.vercel.app")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
	}
}

func TestCORS_DisallowsUnconfiguredOrigin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"https://allowed.example.com"}, next)

	req := httptest.NewRequest(http.MethodGet, "/v1/stats/leaderboards", nil)
	req.Header.Set("Origin", "https://other.example.com")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
	}
}
