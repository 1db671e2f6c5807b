package resolver

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable matches every error caused by a failing record store.
// Callers should treat it as "temporarily unavailable", never as "no asset".
var ErrStoreUnavailable = errors.New("record store unavailable")

// Lookup stages reported in StoreError.
const (
	StageStrict   = "strict"
	StageFallback = "fallback"
)

// StoreError wraps a record store failure with the lookup stage it occurred in.
type StoreError struct {
	Stage string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s lookup: %v: %v", e.Stage, ErrStoreUnavailable, e.Err)
}

// Is reports ErrStoreUnavailable as a match.
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
