package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"bookme/pkg/log"
)

// TokenStatus describes the state of the stored OAuth token.
type TokenStatus string

const (
	TokenValid       TokenStatus = "valid"
	TokenRefreshable TokenStatus = "refreshable" // expired but holds a refresh token
	TokenInvalid     TokenStatus = "invalid"
)

// ErrNoRefreshToken is returned when a refresh is requested for a token that cannot be refreshed.
var ErrNoRefreshToken = errors.New("unable to refresh token: no refresh token stored")

// TokenManager manages the OAuth token used for desktop-app credentials.
type TokenManager struct {
	config    *oauth2.Config
	tokenPath string
}

// NewTokenManager reads OAuth installed-app credentials from credentialsPath.
func NewTokenManager(credentialsPath, tokenPath string) (*TokenManager, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %q: %w", credentialsPath, err)
	}
	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OAuth credentials: %w", err)
	}
	return &TokenManager{config: config, tokenPath: tokenPath}, nil
}

// Status reports whether the stored token is usable as-is, refreshable, or unusable.
func (m *TokenManager) Status() TokenStatus {
	tok, err := readToken(m.tokenPath)
	if err != nil {
		return TokenInvalid
	}
	if tok.Valid() {
		return TokenValid
	}
	if tok.RefreshToken != "" {
		return TokenRefreshable
	}
	return TokenInvalid
}

// Refresh forces a token refresh and persists the result.
func (m *TokenManager) Refresh(ctx context.Context) (*oauth2.Token, error) {
	tok, err := readToken(m.tokenPath)
	if err != nil {
		return nil, err
	}
	if tok.RefreshToken == "" {
		return nil, ErrNoRefreshToken
	}

	expired := *tok
	expired.Expiry = time.Now().Add(-time.Minute)
	fresh, err := m.config.TokenSource(ctx, &expired).Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}
	if err := writeToken(m.tokenPath, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// AuthCodeURL returns the consent URL for generating a new token.
func (m *TokenManager) AuthCodeURL(state string) string {
	return m.config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange trades an authorization code for a token and persists it.
func (m *TokenManager) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	tok, err := m.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	if err := writeToken(m.tokenPath, tok); err != nil {
		return nil, err
	}
	return tok, nil
}

func writeToken(path string, tok *oauth2.Token) (err error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open token file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close token file: %w", cerr)
		}
	}()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// savingTokenSource persists every newly minted access token so refreshed
// credentials survive restarts.
type savingTokenSource struct {
	ctx  context.Context
	l    log.Logger
	base oauth2.TokenSource
	path string

	mu   sync.Mutex
	last string
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken != s.last {
		s.last = tok.AccessToken
		// The in-memory token stays usable when the file cannot be written.
		if err := writeToken(s.path, tok); err != nil {
			s.l.Warnf(s.ctx, "gcalendar: refreshed token not saved to %s: %v", s.path, err)
		}
	}
	return tok, nil
}
