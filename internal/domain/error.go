package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrFetch means the chain list document could not be retrieved.
	ErrFetch = errors.New("fetch failed")

	// ErrParse means the document is malformed or a record violates the chain list schema.
	ErrParse = errors.New("parse failed")

	// ErrGeneration means no valid source could be produced from the parsed records.
	ErrGeneration = errors.New("generation failed")
)

// RecordError describes a single chain list entry that failed validation.
type RecordError struct {
	// Index is the position of the entry in the source array.
	Index int
	// ChainID is only meaningful when HasID is set.
	ChainID uint64
	HasID   bool
	Reason  string
}

func (e *RecordError) Error() string {
	if e.HasID {
		return fmt.Sprintf("chain id %d %s", e.ChainID, e.Reason)
	}
	return fmt.Sprintf("record %d %s", e.Index, e.Reason)
}

// Unwrap makes every RecordError match ErrParse.
func (e *RecordError) Unwrap() error {
	return ErrParse
}
