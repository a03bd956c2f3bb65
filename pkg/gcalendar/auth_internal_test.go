package gcalendar

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"bookme/pkg/log"
)

type warnRecorder struct {
	log.Logger
	warnings []string
}

func (r *warnRecorder) Warnf(_ context.Context, template string, arg ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(template, arg...))
}

func TestSavingTokenSource(t *testing.T) {
	fresh := &oauth2.Token{AccessToken: "fresh", TokenType: "Bearer", Expiry: time.Now().Add(time.Hour)}

	t.Run("Saves a refreshed token", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token.json")
		rec := &warnRecorder{}
		ts := &savingTokenSource{
			ctx:  context.Background(),
			l:    rec,
			base: oauth2.StaticTokenSource(fresh),
			path: path,
			last: "stale",
		}

		if _, err := ts.Token(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		saved, err := readToken(path)
		if err != nil {
			t.Fatalf("token not saved: %v", err)
		}
		if saved.AccessToken != "fresh" {
			t.Errorf("expected fresh token on disk, got %q", saved.AccessToken)
		}
		if len(rec.warnings) != 0 {
			t.Errorf("unexpected warnings: %v", rec.warnings)
		}
	})

	t.Run("Warns when the token cannot be saved", func(t *testing.T) {
		// A directory cannot be opened as a file for writing.
		path := t.TempDir()
		rec := &warnRecorder{}
		ts := &savingTokenSource{
			ctx:  context.Background(),
			l:    rec,
			base: oauth2.StaticTokenSource(fresh),
			path: path,
			last: "stale",
		}

		tok, err := ts.Token()
		if err != nil {
			t.Fatalf("token should still be returned: %v", err)
		}
		if tok.AccessToken != "fresh" {
			t.Errorf("expected fresh token, got %q", tok.AccessToken)
		}
		if len(rec.warnings) != 1 || !strings.Contains(rec.warnings[0], path) {
			t.Fatalf("expected one warning naming %s, got %v", path, rec.warnings)
		}

		// The same token is not written (or warned about) twice.
		if _, err := ts.Token(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rec.warnings) != 1 {
			t.Errorf("expected no repeat warning, got %v", rec.warnings)
		}
	})
}
