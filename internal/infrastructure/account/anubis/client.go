package anubis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/league-stats/internal/domain/user"
	"github.com/riskibarqy/league-stats/internal/platform/logging"
	"github.com/riskibarqy/league-stats/internal/platform/resilience"
	"github.com/riskibarqy/league-stats/internal/usecase"
)

// errAnubisTransient marks failures that should trip the circuit breaker:
// network errors, non-2xx introspection responses, unreadable bodies.
var errAnubisTransient = errors.New("anubis transient failure")

const defaultPrincipalCacheTTL = 30 * time.Second

// Client verifies bearer tokens against the anubis introspection endpoint.
//
// Verified principals are cached briefly so a burst of requests carrying the
// same token costs one upstream call, and a circuit breaker keeps a dead
// anubis from stalling every API request behind its timeout.
type Client struct {
	httpClient    *http.Client
	introspectURL string
	adminKey      string
	breaker       *resilience.CircuitBreaker
	breakerOn     bool
	logger        *logging.Logger

	cacheTTL time.Duration
	cacheMu  sync.RWMutex
	cache    map[string]cachedPrincipal
	now      func() time.Time
}

type cachedPrincipal struct {
	principal user.Principal
	expiresAt time.Time
}

func NewClient(httpClient *http.Client, baseURL, introspectPath, adminKey string, breakerCfg resilience.CircuitBreakerConfig, logger *logging.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &Client{
		httpClient:    httpClient,
		introspectURL: buildURL(baseURL, introspectPath),
		adminKey:      adminKey,
		breaker:       resilience.NewCircuitBreaker(breakerCfg),
		breakerOn:     breakerCfg.Enabled,
		logger:        logger,
		cacheTTL:      defaultPrincipalCacheTTL,
		cache:         make(map[string]cachedPrincipal),
		now:           time.Now,
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	key := hashToken(token)
	if principal, ok := c.cached(key); ok {
		return principal, nil
	}

	if c.breakerOn {
		if err := c.breaker.Allow(); err != nil {
			return user.Principal{}, fmt.Errorf("%w: anubis circuit open", usecase.ErrDependencyUnavailable)
		}
	}

	principal, err := c.introspect(ctx, token)
	if c.breakerOn {
		if isCircuitFailure(err) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		if isCircuitFailure(err) {
			return user.Principal{}, fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
		}
		return user.Principal{}, err
	}

	c.store(key, principal)
	return principal, nil
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	encoded, err := sonic.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, fmt.Errorf("marshal introspect request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, bytes.NewReader(encoded))
	if err != nil {
		return user.Principal{}, fmt.Errorf("create introspect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.adminKey != "" {
		req.Header.Set("x-admin-key", c.adminKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: request introspection: %v", errAnubisTransient, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: read introspect response: %v", errAnubisTransient, err)
	}

	if resp.StatusCode != http.StatusOK {
		// 401/403 here means our admin key was rejected, not the caller's
		// token. Either way anubis is unusable for this request.
		c.logger.WarnContext(ctx, "anubis introspection non-200",
			"status_code", resp.StatusCode,
		)
		return user.Principal{}, fmt.Errorf("%w: introspection status %d", errAnubisTransient, resp.StatusCode)
	}

	var decoded introspectResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return user.Principal{}, fmt.Errorf("%w: unmarshal introspect response: %v", errAnubisTransient, err)
	}

	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, fmt.Errorf("%w: introspect response without user_id", errAnubisTransient)
	}

	return user.Principal{
		UserID:  decoded.UserID,
		Email:   decoded.Email,
		IsAdmin: hasAdminRole(decoded.Roles),
	}, nil
}

func (c *Client) cached(key string) (user.Principal, bool) {
	c.cacheMu.RLock()
	defer c.cacheMu.RUnlock()

	entry, ok := c.cache[key]
	if !ok || c.now().After(entry.expiresAt) {
		return user.Principal{}, false
	}
	return entry.principal, true
}

func (c *Client) store(key string, principal user.Principal) {
	if c.cacheTTL <= 0 {
		return
	}

	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	c.cache[key] = cachedPrincipal{
		principal: principal,
		expiresAt: c.now().Add(c.cacheTTL),
	}
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool     `json:"active"`
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
}
