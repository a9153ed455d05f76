package recommend

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexNotReady is returned when no index has been built successfully.
	ErrIndexNotReady = errors.New("index not ready")
	// ErrEmptyQuery is returned for a blank title query.
	ErrEmptyQuery = errors.New("empty query")
	// ErrTitleNotFound matches every *TitleNotFoundError.
	ErrTitleNotFound = errors.New("title not found")
)

// TitleNotFoundError carries the query that matched no catalog title.
type TitleNotFoundError struct {
	Query string
}

func (e *TitleNotFoundError) Error() string {
	return fmt.Sprintf("%q not found in catalog", e.Query)
}

func (e *TitleNotFoundError) Is(target error) bool { return target == ErrTitleNotFound }
