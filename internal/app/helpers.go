package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/nhle/ghnotify/internal/model"
	"github.com/nhle/ghnotify/internal/notify"
	ghsource "github.com/nhle/ghnotify/internal/source/github"
)

// fetchErrorNotice converts a fetch failure into the one-line notice
// shown in the status bar.
func fetchErrorNotice(err error, tokenEnv string) model.Notice {
	var (
		rateErr      *notify.RateCheckError
		listErr      *notify.ListFetchError
		transportErr *ghsource.TransportError
	)

	switch {
	case errors.Is(err, notify.ErrMissingCredential):
		return model.Error(missingCredentialText(tokenEnv))
	case errors.As(err, &rateErr):
		return model.Error(fmt.Sprintf("Rate limit check failed (HTTP %d)", rateErr.Status))
	case errors.As(err, &listErr):
		if listErr.Err != nil {
			return model.Error("Could not read the notification list")
		}
		return model.Error(fmt.Sprintf("Fetching notifications failed (HTTP %d)", listErr.Status))
	case errors.Is(err, context.Canceled):
		return model.Warn("Fetch canceled")
	case errors.As(err, &transportErr):
		return model.Error(fmt.Sprintf("Network error: %v", transportErr.Err))
	default:
		return model.Error(err.Error())
	}
}

// markReadErrorNotice converts a mark-as-read failure into a notice.
func markReadErrorNotice(err error, tokenEnv string) model.Notice {
	var (
		markErr      *notify.MarkReadError
		transportErr *ghsource.TransportError
	)

	switch {
	case errors.Is(err, notify.ErrMissingCredential):
		return model.Error(missingCredentialText(tokenEnv))
	case errors.As(err, &markErr):
		return model.Error(fmt.Sprintf("Mark as read failed (HTTP %d)", markErr.Status))
	case errors.As(err, &transportErr):
		return model.Error(fmt.Sprintf("Network error: %v", transportErr.Err))
	default:
		return model.Error(err.Error())
	}
}

func missingCredentialText(tokenEnv string) string {
	return fmt.Sprintf("No GitHub token: set $%s or run `ghnotify login`", tokenEnv)
}
