package dateinfer

import (
	"errors"
	"fmt"
)

// ErrorKind identifies one of the failure modes a call to Infer can
// surface, per spec.md §7.
type ErrorKind int

const (
	// ErrEmptyInput indicates no non-sentinel inputs remained after filtering.
	ErrEmptyInput ErrorKind = iota
	// ErrInconsistentFormats indicates no signature bucket held a strict majority.
	ErrInconsistentFormats
	// ErrUnresolvableFormat indicates resolution left a position without a legal role.
	ErrUnresolvableFormat
	// ErrUnknownAlphaToken indicates a non-dictionary alpha token appeared in the winning bucket.
	ErrUnknownAlphaToken
	// ErrLowConfidence indicates confidence fell below the caller's min_confidence.
	ErrLowConfidence
	// ErrStrictValidationFailed indicates strict=true and some inputs disagreed with the inferred format.
	ErrStrictValidationFailed
)

func (k ErrorKind) String() string {
	switch k {
	case ErrEmptyInput:
		return "EmptyInput"
	case ErrInconsistentFormats:
		return "InconsistentFormats"
	case ErrUnresolvableFormat:
		return "UnresolvableFormat"
	case ErrUnknownAlphaToken:
		return "UnknownAlphaToken"
	case ErrLowConfidence:
		return "LowConfidence"
	case ErrStrictValidationFailed:
		return "StrictValidationFailed"
	default:
		return fmt.Sprintf("%%!ErrorKind(%d)", int(k))
	}
}

// InferError is the single failure type returned by Infer, InferFormat and
// InferBatch. Every field besides Kind and Message is zero unless the kind
// documents otherwise.
type InferError struct {
	Kind    ErrorKind
	Message string

	// MajoritySize/Total are set for ErrInconsistentFormats.
	MajoritySize int
	Total        int

	// Token is set for ErrUnknownAlphaToken.
	Token string

	// Got/Required are set for ErrLowConfidence.
	Got      float64
	Required float64

	// Bad/BadTotal are set for ErrStrictValidationFailed.
	Bad      int
	BadTotal int
}

func (e *InferError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, someOtherInferError) match by Kind rather than by
// identity, so two independently constructed *InferErrors of the same kind
// compare equal. ErrEmptyInput and its siblings are ErrorKind values (ints),
// not errors, so they can't be passed to errors.Is directly; extract and
// compare a kind with Kind(err) instead.
func (e *InferError) Is(target error) bool {
	var other *InferError
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

func errEmptyInput() error {
	return &InferError{Kind: ErrEmptyInput, Message: "no non-sentinel inputs remain after filtering"}
}

func errInconsistentFormats(majority, total int) error {
	return &InferError{
		Kind:         ErrInconsistentFormats,
		Message:      fmt.Sprintf("no signature bucket holds a strict majority (%d/%d)", majority, total),
		MajoritySize: majority,
		Total:        total,
	}
}

func errUnresolvableFormat() error {
	return &InferError{Kind: ErrUnresolvableFormat, Message: "resolution left a position without a legal role"}
}

func errUnknownAlphaToken(token string) error {
	return &InferError{
		Kind:    ErrUnknownAlphaToken,
		Message: fmt.Sprintf("unrecognized alpha token %q in winning bucket", token),
		Token:   token,
	}
}

func errLowConfidence(got, required float64) error {
	return &InferError{
		Kind:     ErrLowConfidence,
		Message:  fmt.Sprintf("confidence %.3f below required %.3f", got, required),
		Got:      got,
		Required: required,
	}
}

func errStrictValidationFailed(bad, total int) error {
	return &InferError{
		Kind:     ErrStrictValidationFailed,
		Message:  fmt.Sprintf("strict validation failed for %d of %d inputs", bad, total),
		Bad:      bad,
		BadTotal: total,
	}
}

// sentinel error kinds for errors.Is(err, dateinfer.ErrEmptyInput) style
// matching against the ErrorKind constants directly is done via Kind(err).

// Kind extracts the ErrorKind from err, if err is (or wraps) an *InferError.
// Returns (0, false) otherwise.
func Kind(err error) (ErrorKind, bool) {
	var ie *InferError
	if errors.As(err, &ie) {
		return ie.Kind, true
	}
	return 0, false
}
