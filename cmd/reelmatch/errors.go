package main

import (
	"errors"
	"fmt"

	"reelmatch/internal/poster"
	"reelmatch/internal/recommend"
	"reelmatch/internal/services"
)

// describeError turns workflow errors into the message shown to the user.
func describeError(err error) error {
	if err == nil {
		return nil
	}
	var notFound *recommend.TitleNotFoundError
	switch {
	case errors.Is(err, recommend.ErrEmptyQuery):
		return errors.New("please enter a movie or TV show title")
	case errors.As(err, &notFound):
		return fmt.Errorf("%q was not found in the catalog; try another title or part of one", notFound.Query)
	case errors.Is(err, recommend.ErrIndexNotReady):
		msg := "catalog is not loaded; check catalog.path or pass --catalog"
		if hint := services.Hint(err); hint != "" {
			msg += " (" + hint + ")"
		}
		return fmt.Errorf("%s: %w", msg, err)
	case errors.Is(err, poster.ErrExportLocked):
		return errors.New("another export is writing to that directory; try again when it finishes")
	default:
		return err
	}
}
