package tangoconnect

import (
	"context"
	"sync"
	"time"

	"github.com/facebookgo/clock"
	"golang.org/x/sync/singleflight"
)

// expiryMargin is subtracted from the advertised token lifetime.
const expiryMargin = 5 * time.Minute

// tokenSource caches one access token and collapses concurrent refreshes into a
// single request.
type tokenSource struct {
	clock clock.Clock
	fetch func(ctx context.Context) (tokenResponse, error)
	group singleflight.Group

	mu         sync.Mutex
	token      string
	validUntil time.Time
}

func newTokenSource(clk clock.Clock, fetch func(ctx context.Context) (tokenResponse, error)) *tokenSource {
	return &tokenSource{clock: clk, fetch: fetch}
}

// Token returns the cached token while it is valid, otherwise fetches a new one.
// The shared refresh is detached from the caller's cancellation so that one caller
// giving up does not fail the others waiting on it; each caller still stops waiting
// when its own ctx is done.
func (s *tokenSource) Token(ctx context.Context) (string, error) {
	if token, ok := s.cached(); ok {
		return token, nil
	}

	ch := s.group.DoChan("token", func() (any, error) {
		if token, ok := s.cached(); ok {
			return token, nil
		}

		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultTimeout)
		defer cancel()

		issuedAt := s.clock.Now()
		resp, err := s.fetch(fetchCtx)
		if err != nil {
			return "", err
		}

		s.mu.Lock()
		s.token = resp.AccessToken
		s.validUntil = issuedAt.Add(time.Duration(resp.ExpiresIn)*time.Second - expiryMargin)
		s.mu.Unlock()

		return resp.AccessToken, nil
	})

	select {
	case <-ctx.Done():
		return "", &AuthenticationError{Cause: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// Invalidate drops token if it is still the cached one.
func (s *tokenSource) Invalidate(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == token {
		s.token = ""
		s.validUntil = time.Time{}
	}
}

func (s *tokenSource) cached() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" || !s.clock.Now().Before(s.validUntil) {
		return "", false
	}
	return s.token, true
}
