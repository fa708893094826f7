package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"

	"github.com/nhle/ghnotify/internal/credential"
	"github.com/nhle/ghnotify/internal/logging"
)

func runLogin() int {
	logger, closer, err := consoleLogger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		return 1
	}
	defer closer.Close()

	var token string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("GitHub Token").
				Description("A classic token with the notifications scope").
				EchoMode(huh.EchoModePassword).
				Value(&token).
				Validate(validateToken),
		),
	)

	if err = form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return 130
		}
		logger.Error().Err(err).Msg("login prompt failed")
		return 1
	}

	if err = credential.Set(credential.TokenKey, strings.TrimSpace(token)); err != nil {
		logger.Error().Err(err).Msg("storing token")
		return 1
	}
	logger.Info().Msg("token stored in the system keyring")
	return 0
}

func runLogout(tokenEnv string) int {
	logger, closer, err := consoleLogger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		return 1
	}
	defer closer.Close()

	if err = credential.Delete(credential.TokenKey); err != nil {
		logger.Error().Err(err).Msg("removing token")
		return 1
	}
	logger.Info().Msg("token removed from the system keyring")
	if os.Getenv(tokenEnv) != "" {
		fmt.Fprintf(os.Stderr, "note: %s is still set in the environment\n", tokenEnv)
	}
	return 0
}

// consoleLogger builds the human-readable logger used by the
// subcommands, which run outside the full-screen UI.
func consoleLogger(w io.Writer) (zerolog.Logger, io.Closer, error) {
	return logging.New(logging.Config{Level: "info", Console: w})
}

func validateToken(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("token is required")
	}
	return nil
}
