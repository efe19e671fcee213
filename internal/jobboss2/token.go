package jobboss2

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/sync/singleflight"

	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/logging"
)

// Token defaults.
const (
	DefaultTokenRetries    = 3
	DefaultTokenLifetime   = time.Hour
	DefaultTokenExpirySkew = 30 * time.Second
	DefaultTokenRetryDelay = 500 * time.Millisecond
	DefaultRequestTimeout  = 30 * time.Second
	tokenSingleflightKey   = "token"
	minimumUsefulTokenLife = time.Second
)

// TokenStatus describes the cached token as seen by the next caller.
type TokenStatus int

const (
	TokenExpired TokenStatus = iota
	TokenValid
	TokenRefreshing
)

func (s TokenStatus) String() string {
	switch s {
	case TokenValid:
		return "valid"
	case TokenRefreshing:
		return "refreshing"
	default:
		return "expired"
	}
}

// tokenState is never modified after it is published; a refresh replaces it.
type tokenState struct {
	accessToken string
	expiresAt   time.Time
}

// TokenConfig configures a TokenManager. Zero durations and counts take the
// package defaults.
type TokenConfig struct {
	ClientID     string
	ClientSecret string
	TokenURL     string

	Retries          int
	RetryDelay       time.Duration
	FallbackLifetime time.Duration
	ExpirySkew       time.Duration
	Timeout          time.Duration

	HTTPClient *http.Client
	Logger     logging.Logger
}

// TokenManager owns the OAuth2 client-credentials token of one Client.
// Concurrent callers share a single in-flight acquisition.
type TokenManager struct {
	source     clientcredentials.Config
	httpClient *http.Client
	logger     logging.Logger

	retries    int
	retryDelay time.Duration
	fallback   time.Duration
	skew       time.Duration
	timeout    time.Duration

	now func() time.Time

	mu       sync.RWMutex
	state    *tokenState
	group    singleflight.Group
	inflight atomic.Bool
}

// NewTokenManager creates a TokenManager. No request is made until the
// first call to Token.
func NewTokenManager(cfg TokenConfig) *TokenManager {
	m := &TokenManager{
		source: clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		},
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
		retries:    cfg.Retries,
		retryDelay: cfg.RetryDelay,
		fallback:   cfg.FallbackLifetime,
		skew:       cfg.ExpirySkew,
		timeout:    cfg.Timeout,
		now:        time.Now,
	}
	if m.httpClient == nil {
		m.httpClient = &http.Client{}
	}
	if m.logger == nil {
		m.logger = logging.Nop()
	}
	if m.retries <= 0 {
		m.retries = DefaultTokenRetries
	}
	if m.retryDelay < 0 {
		m.retryDelay = 0
	}
	if m.fallback <= 0 {
		m.fallback = DefaultTokenLifetime
	}
	if m.skew <= 0 {
		m.skew = DefaultTokenExpirySkew
	}
	if m.timeout <= 0 {
		m.timeout = DefaultRequestTimeout
	}
	return m
}

// Token returns a bearer token that has not reached its expiry, acquiring
// one first when needed.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	if tok, ok := m.cached(); ok {
		return tok, nil
	}
	return m.acquire(ctx)
}

// Refresh discards stale, if it is still the cached token, and returns a
// freshly acquired one. A token refreshed concurrently by another caller is
// returned as is.
func (m *TokenManager) Refresh(ctx context.Context, stale string) (string, error) {
	m.mu.Lock()
	if m.state != nil && m.state.accessToken == stale {
		m.state = nil
	}
	m.mu.Unlock()

	return m.Token(ctx)
}

// Status reports the state of the cached token.
func (m *TokenManager) Status() TokenStatus {
	if m.inflight.Load() {
		return TokenRefreshing
	}
	if _, ok := m.cached(); ok {
		return TokenValid
	}
	return TokenExpired
}

func (m *TokenManager) cached() (string, bool) {
	m.mu.RLock()
	st := m.state
	m.mu.RUnlock()

	if st == nil || !m.now().Before(st.expiresAt) {
		return "", false
	}
	return st.accessToken, true
}

func (m *TokenManager) acquire(ctx context.Context) (string, error) {
	// The acquisition outlives any one waiter: it runs on a context that
	// ignores the caller's cancellation.
	detached := context.WithoutCancel(ctx)

	ch := m.group.DoChan(tokenSingleflightKey, func() (any, error) {
		if tok, ok := m.cached(); ok {
			return tok, nil
		}

		m.inflight.Store(true)
		defer m.inflight.Store(false)

		st, err := m.fetch(detached)
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		m.state = st
		m.mu.Unlock()
		return st.accessToken, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (m *TokenManager) fetch(ctx context.Context) (*tokenState, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, m.httpClient)

	var lastErr error
	for attempt := 1; attempt <= m.retries; attempt++ {
		if attempt > 1 && m.retryDelay > 0 {
			time.Sleep(time.Duration(attempt-1) * m.retryDelay)
		}

		actx, cancel := context.WithTimeout(ctx, m.timeout)
		tok, err := m.source.Token(actx)
		cancel()
		if err == nil {
			st := m.stateFor(tok)
			m.logger.Debug("token acquired", "attempt", attempt, "expires_at", st.expiresAt)
			return st, nil
		}

		lastErr = err
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) && rerr.Response != nil && rerr.Response.StatusCode < http.StatusInternalServerError {
			return nil, &AuthenticationError{
				Status:  rerr.Response.StatusCode,
				Message: "token endpoint rejected the client credentials",
				Err:     err,
			}
		}
		m.logger.Warn("token acquisition failed", "attempt", attempt, "of", m.retries, "error", err)
	}

	return nil, &AuthenticationError{
		Message: fmt.Sprintf("token endpoint unavailable after %d attempts", m.retries),
		Err:     lastErr,
	}
}

func (m *TokenManager) stateFor(tok *oauth2.Token) *tokenState {
	life := expiresIn(tok)
	if life <= 0 {
		life = m.fallback
	}
	if life > m.skew {
		life -= m.skew
	} else if life/2 >= minimumUsefulTokenLife {
		life /= 2
	}
	return &tokenState{
		accessToken: tok.AccessToken,
		expiresAt:   m.now().Add(life),
	}
}

// expiresIn reads the lifetime reported by the token endpoint. Zero means
// the endpoint did not report one.
func expiresIn(tok *oauth2.Token) time.Duration {
	var secs float64
	switch v := tok.Extra("expires_in").(type) {
	case float64:
		secs = v
	case json.Number:
		secs, _ = v.Float64()
	case string:
		secs, _ = strconv.ParseFloat(v, 64)
	}
	if secs > 0 {
		return time.Duration(secs * float64(time.Second))
	}
	if !tok.Expiry.IsZero() {
		return time.Until(tok.Expiry)
	}
	return 0
}
