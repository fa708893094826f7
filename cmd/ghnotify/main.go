// Command ghnotify lists unread GitHub notifications in the terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/nhle/ghnotify/internal/app"
	"github.com/nhle/ghnotify/internal/credential"
	"github.com/nhle/ghnotify/internal/logging"
	"github.com/nhle/ghnotify/internal/model"
	"github.com/nhle/ghnotify/internal/notify"
	"github.com/nhle/ghnotify/internal/opener"
	ghsource "github.com/nhle/ghnotify/internal/source/github"
	appsync "github.com/nhle/ghnotify/internal/sync"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("ghnotify", flag.ContinueOnError)
	cfgPath := fs.String("config", model.DefaultConfigPath(), "path to config yaml")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: ghnotify [-config path] [login|logout]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "fatal: loading .env:", err)
		return 1
	}

	cfg, err := model.LoadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		return 1
	}

	switch fs.Arg(0) {
	case "":
		return runUI(cfg)
	case "login":
		return runLogin()
	case "logout":
		return runLogout(cfg.GitHub.TokenEnv)
	default:
		fs.Usage()
		return 2
	}
}

func runUI(cfg *model.AppConfig) int {
	logger, closer, err := logging.New(logging.Config{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		return 1
	}
	defer closer.Close()

	token, origin, err := credential.Resolve(cfg.GitHub.TokenEnv)
	if err != nil {
		// An unreadable keyring degrades to the missing-credential notice.
		logger.Warn().Err(err).Msg("keyring unavailable")
	}
	logger.Info().
		Str("origin", string(origin)).
		Str("api", cfg.GitHub.APIBaseURL).
		Dur("poll_interval", cfg.PollInterval).
		Msg("starting")

	client := ghsource.NewClient()
	defer client.Close()

	session := notify.NewSession(client, notify.Options{
		Token:      token,
		APIBaseURL: cfg.GitHub.APIBaseURL,
		UserAgent:  cfg.GitHub.UserAgent,
		Logger:     &logger,
	})
	poller := appsync.New(session, cfg.PollInterval, logger)
	defer poller.Stop()

	m := app.New(app.Options{
		Poller:       poller,
		Opener:       opener.NewBrowser(),
		GitHub:       cfg.GitHub,
		FetchOnStart: cfg.FetchOnStart,
		Logger:       logger,
	})

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logger.Error().Err(err).Msg("ui exited with error")
		fmt.Fprintln(os.Stderr, "fatal:", err)
		return 1
	}
	return 0
}
