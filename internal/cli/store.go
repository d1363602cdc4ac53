package cli

import (
	"errors"
	"fmt"

	"github.com/tidylist-io/tidylist/internal/config"
	"github.com/tidylist-io/tidylist/internal/models"
	"github.com/tidylist-io/tidylist/internal/slot"
	"github.com/tidylist-io/tidylist/internal/store"
)

// openStore loads settings, resolves the slot location, and opens the
// task store. Every command goes through here.
func openStore() (*store.Store, *models.Settings, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}

	slotDir, err := config.ResolveSlotDir(settings)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve slot directory: %w", err)
	}

	s, err := store.Open(slot.NewFile(slotDir))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open task store: %w", err)
	}
	return s, settings, nil
}

// slotFilePath returns the file the task collection lives in, for the
// TUI's live-reload watcher.
func slotFilePath() (string, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return "", err
	}
	slotDir, err := config.ResolveSlotDir(settings)
	if err != nil {
		return "", err
	}
	return slot.NewFile(slotDir).Path(store.DefaultKey), nil
}

// reportErr prints a store error as the matching notice class and
// returns it for the exit code. Persistence failures are warnings: the
// in-memory operation succeeded, only the write to disk did not.
func reportErr(err error) error {
	var verr *store.ValidationError
	var nf *store.NotFoundError
	var perr *store.PersistenceError

	switch {
	case errors.As(err, &verr):
		printNotice(models.NoticeWarning, "%s", verr.Error())
	case errors.As(err, &nf):
		printNotice(models.NoticeError, "%s", nf.Error())
	case errors.As(err, &perr):
		printNotice(models.NoticeWarning, "%s", perr.Error())
	default:
		printNotice(models.NoticeError, "%s", err.Error())
	}
	return err
}
