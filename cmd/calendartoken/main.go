// Command calendartoken manages the Google Calendar OAuth token used by the API.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"bookme/pkg/gcalendar"
	"bookme/pkg/log"
)

var errTokenInvalid = errors.New("token is missing or cannot be refreshed; run generatetoken")

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	logger := log.Init(log.ZapConfig{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingConsole})

	if err := newApp(logger).Run(os.Args); err != nil {
		logger.Error(context.Background(), "calendartoken failed: ", err)
		os.Exit(1)
	}
}

func newApp(l log.Logger) *cli.App {
	return &cli.App{
		Name:  "calendartoken",
		Usage: "Check, refresh or generate the Google Calendar OAuth token.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "credentials",
				Value:   "credentials.json",
				Usage:   "OAuth desktop-app credentials file",
				EnvVars: []string{"GOOGLE_CALENDAR_CREDENTIALS_PATH", "GOOGLE_CALENDAR_CREDENTIALS"},
			},
			&cli.StringFlag{
				Name:    "token",
				Value:   "token.json",
				Usage:   "token file read and written by the API",
				EnvVars: []string{"GOOGLE_CALENDAR_TOKEN_PATH"},
			},
		},
		Commands: []*cli.Command{
			checkCommand(l),
			refreshCommand(l),
			generateCommand(l),
		},
	}
}

func tokenManager(c *cli.Context) (*gcalendar.TokenManager, error) {
	return gcalendar.NewTokenManager(c.String("credentials"), c.String("token"))
}

func checkCommand(l log.Logger) *cli.Command {
	return &cli.Command{
		Name:  "checktoken",
		Usage: "Report whether the stored token is valid, refreshable or invalid.",
		Action: func(c *cli.Context) error {
			m, err := tokenManager(c)
			if err != nil {
				return err
			}
			status := m.Status()
			fmt.Fprintln(c.App.Writer, status)
			if status == gcalendar.TokenInvalid {
				return errTokenInvalid
			}
			l.Infof(c.Context, "Token at %s is %s", c.String("token"), status)
			return nil
		},
	}
}

func refreshCommand(l log.Logger) *cli.Command {
	return &cli.Command{
		Name:  "refreshtoken",
		Usage: "Force a refresh of the stored token and save it.",
		Action: func(c *cli.Context) error {
			m, err := tokenManager(c)
			if err != nil {
				return err
			}
			tok, err := m.Refresh(c.Context)
			if err != nil {
				return err
			}
			l.Infof(c.Context, "Token refreshed, valid until %s", tok.Expiry.Format("2006-01-02 15:04:05 MST"))
			return nil
		},
	}
}

func generateCommand(l log.Logger) *cli.Command {
	return &cli.Command{
		Name:  "generatetoken",
		Usage: "Run the consent flow and save a new token.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "code", Usage: "authorization code; prompted for when omitted"},
		},
		Action: func(c *cli.Context) error {
			m, err := tokenManager(c)
			if err != nil {
				return err
			}

			code := c.String("code")
			if code == "" {
				fmt.Fprintf(c.App.Writer, "Open the following link in your browser and authorize access:\n\n%s\n\n", m.AuthCodeURL("state-token"))
				fmt.Fprint(c.App.Writer, "Enter authorization code: ")
				if code, err = readCode(c.App.Reader); err != nil {
					return err
				}
			}

			if _, err := m.Exchange(c.Context, code); err != nil {
				return err
			}
			l.Infof(c.Context, "Token saved to %s", c.String("token"))
			return nil
		},
	}
}

func readCode(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read authorization code: %w", err)
	}
	code := strings.TrimSpace(line)
	if code == "" {
		return "", errors.New("authorization code is required")
	}
	return code, nil
}
