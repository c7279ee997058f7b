package canonical

import (
	"github.com/pkg/errors"

	"jcs.mleku.dev/number"
	"jcs.mleku.dev/walk"
)

var (
	// ErrNonFiniteNumber is returned for NaN and the infinities, which have no
	// canonical JSON representation. It is the same error the Compact
	// formatter returns.
	ErrNonFiniteNumber = number.ErrNonFinite
	// ErrUnbalancedScope means the driver closed an object, key or value that
	// was not open, or closed an object with a member half written. It is a
	// bug in the driver.
	ErrUnbalancedScope = errors.New("unbalanced object scope")
	// ErrSinkFailure wraps an error returned by the output writer.
	ErrSinkFailure = errors.New("output rejected write")
	// ErrMalformedRawFragment is returned when a raw fragment is not exactly
	// one valid JSON value.
	ErrMalformedRawFragment = walk.ErrMalformedRawFragment
)

// SinkError carries the error the output writer returned. errors.Is matches
// it against both ErrSinkFailure and the original error.
type SinkError struct{ Err error }

func (e *SinkError) Error() string { return ErrSinkFailure.Error() + ": " + e.Err.Error() }

func (e *SinkError) Unwrap() error { return e.Err }

func (e *SinkError) Is(target error) bool { return target == ErrSinkFailure }
