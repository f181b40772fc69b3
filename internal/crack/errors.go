package crack

import (
	"errors"
	"fmt"
)

// ErrModulusUndetermined is the shared cause of every modulus recovery
// failure. Callers that only care whether more observations are needed can
// test for it with errors.Is.
var ErrModulusUndetermined = errors.New("could not determine modulus")

// RecoveryError represents a failure of one of the recovery stages.
//
// Recovery errors include:
//   - Insufficient data: fewer than MinSamples observations
//   - Degenerate modulus: every elimination value was exactly zero
//   - Non-invertible difference: first difference shares a factor with the modulus
//   - Invalid modulus: a supplied modulus is zero or negative
//   - Mismatch: recovered parameters do not reproduce the observations
type RecoveryError struct {
	// Code identifies the error category.
	Code RecoveryErrorCode

	// Stage names the stage that failed ("modulus", "multiplier", "increment", "verify").
	Stage string

	// Message is a human-readable description.
	Message string

	// Samples is the number of observations supplied.
	Samples int

	// Index is the failing observation index for mismatch errors, -1 otherwise.
	Index int

	// Err is the underlying cause, if any.
	Err error
}

// RecoveryErrorCode categorizes recovery errors.
type RecoveryErrorCode string

const (
	// ErrCodeInsufficientData indicates too few observations to form a difference triple.
	ErrCodeInsufficientData RecoveryErrorCode = "INSUFFICIENT_DATA"

	// ErrCodeDegenerateModulus indicates the GCD accumulation produced zero.
	ErrCodeDegenerateModulus RecoveryErrorCode = "DEGENERATE_MODULUS"

	// ErrCodeNonInvertibleDifference indicates states[1]-states[0] has no inverse modulo m.
	ErrCodeNonInvertibleDifference RecoveryErrorCode = "NON_INVERTIBLE_DIFFERENCE"

	// ErrCodeInvalidModulus indicates a non-positive modulus was supplied.
	ErrCodeInvalidModulus RecoveryErrorCode = "INVALID_MODULUS"

	// ErrCodeMismatch indicates the parameters do not reproduce the observations.
	ErrCodeMismatch RecoveryErrorCode = "MISMATCH"
)

// Error implements the error interface.
func (e *RecoveryError) Error() string {
	msg := fmt.Sprintf("%s: %s (stage=%s, samples=%d)", e.Code, e.Message, e.Stage, e.Samples)
	if e.Index >= 0 {
		msg = fmt.Sprintf("%s: %s (stage=%s, samples=%d, index=%d)", e.Code, e.Message, e.Stage, e.Samples, e.Index)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *RecoveryError) Unwrap() error {
	return e.Err
}

// IsModulusError reports whether err is an insufficient-data or
// degenerate-modulus failure. Both mean "could not determine modulus".
func IsModulusError(err error) bool {
	return errors.Is(err, ErrModulusUndetermined)
}

// IsNonInvertibleError reports whether err is a non-invertible difference failure.
func IsNonInvertibleError(err error) bool {
	return CodeOf(err) == ErrCodeNonInvertibleDifference
}

// CodeOf returns the RecoveryErrorCode carried by err, or "" if err is not
// (and does not wrap) a RecoveryError.
func CodeOf(err error) RecoveryErrorCode {
	var re *RecoveryError
	if errors.As(err, &re) {
		return re.Code
	}
	return ""
}

func newInsufficientDataError(stage string, samples, need int) *RecoveryError {
	e := &RecoveryError{
		Code:    ErrCodeInsufficientData,
		Stage:   stage,
		Message: fmt.Sprintf("need at least %d observations", need),
		Samples: samples,
		Index:   -1,
	}
	if stage == stageModulus {
		e.Err = ErrModulusUndetermined
	}
	return e
}

func newDegenerateModulusError(samples int) *RecoveryError {
	return &RecoveryError{
		Code:    ErrCodeDegenerateModulus,
		Stage:   stageModulus,
		Message: "all elimination values are zero",
		Samples: samples,
		Index:   -1,
		Err:     ErrModulusUndetermined,
	}
}

func newNonInvertibleError(samples int, cause error) *RecoveryError {
	return &RecoveryError{
		Code:    ErrCodeNonInvertibleDifference,
		Stage:   stageMultiplier,
		Message: "first difference is not invertible modulo the modulus",
		Samples: samples,
		Index:   -1,
		Err:     cause,
	}
}

func newInvalidModulusError(stage string, samples int, cause error) *RecoveryError {
	return &RecoveryError{
		Code:    ErrCodeInvalidModulus,
		Stage:   stage,
		Message: "modulus must be positive",
		Samples: samples,
		Index:   -1,
		Err:     cause,
	}
}

func newMismatchError(samples, index int, msg string) *RecoveryError {
	return &RecoveryError{
		Code:    ErrCodeMismatch,
		Stage:   stageVerify,
		Message: msg,
		Samples: samples,
		Index:   index,
	}
}
