package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"bookme/pkg/log"
)

const testCreds = `{"installed":{"client_id":"id.apps.googleusercontent.com","client_secret":"secret","auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token","redirect_uris":["urn:ietf:wg:oauth:2.0:oob"]}}`

func writeFiles(t *testing.T, tok *oauth2.Token) (string, string) {
	t.Helper()
	dir := t.TempDir()
	creds := filepath.Join(dir, "credentials.json")
	if err := os.WriteFile(creds, []byte(testCreds), 0600); err != nil {
		t.Fatal(err)
	}
	token := filepath.Join(dir, "token.json")
	if tok != nil {
		data, _ := json.Marshal(tok)
		if err := os.WriteFile(token, data, 0600); err != nil {
			t.Fatal(err)
		}
	}
	return creds, token
}

func TestCheckToken(t *testing.T) {
	tests := []struct {
		name    string
		tok     *oauth2.Token
		want    string
		wantErr bool
	}{
		{name: "Valid", tok: &oauth2.Token{AccessToken: "a", Expiry: time.Now().Add(time.Hour)}, want: "valid"},
		{name: "Refreshable", tok: &oauth2.Token{AccessToken: "a", RefreshToken: "r", Expiry: time.Now().Add(-time.Hour)}, want: "refreshable"},
		{name: "Missing", want: "invalid", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, token := writeFiles(t, tt.tok)
			var out bytes.Buffer
			app := newApp(log.NewNop())
			app.Writer = &out

			err := app.Run([]string{"calendartoken", "--credentials", creds, "--token", token, "checktoken"})
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr && !errors.Is(err, errTokenInvalid) {
				t.Errorf("expected errTokenInvalid, got %v", err)
			}
			if got := strings.TrimSpace(out.String()); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestGenerateTokenRequiresCode(t *testing.T) {
	creds, token := writeFiles(t, nil)
	var out bytes.Buffer
	app := newApp(log.NewNop())
	app.Writer = &out
	app.Reader = strings.NewReader("\n")

	err := app.Run([]string{"calendartoken", "--credentials", creds, "--token", token, "generatetoken"})
	if err == nil {
		t.Fatal("expected error for empty code")
	}
	if !strings.Contains(out.String(), "access_type=offline") {
		t.Errorf("expected consent URL in output, got %q", out.String())
	}
}

func TestReadCode(t *testing.T) {
	code, err := readCode(strings.NewReader("  4/abc \n"))
	if err != nil || code != "4/abc" {
		t.Errorf("expected 4/abc, got %q (%v)", code, err)
	}
}
