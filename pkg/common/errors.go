package common

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies conversion failures. The string value is the stable
// code shown to users.
type ErrorKind string

const (
	KindSkinLoad          ErrorKind = "SKIN_001"
	KindSkinDimensions    ErrorKind = "SKIN_002"
	KindSkinFormat        ErrorKind = "SKIN_003"
	KindConfig            ErrorKind = "CFG_001"
	KindConfigRead        ErrorKind = "CFG_002"
	KindConfigParse       ErrorKind = "CFG_003"
	KindEncode            ErrorKind = "SCH_001"
	KindDimensionOverflow ErrorKind = "SCH_002"
)

// ConversionError carries an error kind, a message and, for configuration
// failures, every violation found.
type ConversionError struct {
	Kind       ErrorKind
	Message    string
	Violations []string
	Err        error
}

// NewConversionError creates a ConversionError wrapping err (which may be nil).
func NewConversionError(kind ErrorKind, message string, err error) *ConversionError {
	return &ConversionError{Kind: kind, Message: message, Err: err}
}

// NewConfigError creates a configuration error listing all violations.
func NewConfigError(violations []string) *ConversionError {
	return &ConversionError{
		Kind:       KindConfig,
		Message:    ErrInvalidConfig,
		Violations: append([]string(nil), violations...),
	}
}

func (e *ConversionError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s", e.Kind, e.Message)
	if len(e.Violations) > 0 {
		sb.WriteString(": ")
		sb.WriteString(strings.Join(e.Violations, "; "))
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a ConversionError of the same kind.
func (e *ConversionError) Is(target error) bool {
	var other *ConversionError
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// KindOf returns the kind of the first ConversionError in err's chain, or
// an empty kind.
func KindOf(err error) ErrorKind {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}
