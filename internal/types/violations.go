// Package types provides type definitions for structured data used throughout the style linter.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Kind identifies which style check produced a violation.
type Kind int

// The seven style checks. The zero value is not a valid kind.
const (
	KindInvalid Kind = iota
	KindCopyright
	KindImport
	KindModuleDoc
	KindLineLength
	KindForbiddenChar
	KindReservedNotation
	KindSetOption
)

// AllKinds lists every valid kind in report order.
var AllKinds = []Kind{
	KindCopyright,
	KindImport,
	KindModuleDoc,
	KindLineLength,
	KindForbiddenChar,
	KindReservedNotation,
	KindSetOption,
}

var kindCodeMap = map[Kind]string{
	KindCopyright:        "ERR_COP",
	KindImport:           "ERR_IMP",
	KindModuleDoc:        "ERR_MOD",
	KindLineLength:       "ERR_LIN",
	KindForbiddenChar:    "ERR_SAV",
	KindReservedNotation: "ERR_RNT",
	KindSetOption:        "ERR_OPT",
}

// String returns the code used in reports and exception files, e.g. ERR_LIN.
func (k Kind) String() string {
	v, ok := kindCodeMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

// Message returns the human-readable description printed next to the code.
func (k Kind) Message() string {
	switch k {
	case KindCopyright:
		return "Malformed or missing copyright header"
	case KindImport:
		return "More than one file imported per line"
	case KindModuleDoc:
		return "Module docstring missing, or too late"
	case KindLineLength:
		return "Line has more than 100 characters"
	case KindForbiddenChar:
		return "File contains the character ᾰ"
	case KindReservedNotation:
		return "Reserved notation outside tactic.reserved_notation"
	case KindSetOption:
		return "Forbidden set_option command"
	case KindInvalid:
	}

	return fmt.Sprintf("unknown check kind %d", int(k))
}

// Valid reports whether k is one of the seven check kinds.
func (k Kind) Valid() bool {
	_, ok := kindCodeMap[k]
	return ok
}

// ParseKind maps a code such as ERR_COP back to its Kind.
func ParseKind(code string) (Kind, bool) {
	for k, v := range kindCodeMap {
		if v == code {
			return k, true
		}
	}

	return KindInvalid, false
}

// MarshalText encodes the kind as its code.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("cannot encode check kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText for setting values with configs, JSON reports, etc.
func (k *Kind) UnmarshalText(rawtext []byte) error {
	kind, ok := ParseKind(string(rawtext))
	if !ok {
		return fmt.Errorf("unknown check kind %q", string(rawtext))
	}

	*k = kind
	return nil
}

// Violation represents a single style check failure at a line of a file.
// Line is 1-based; 0 means the copyright header never started.
type Violation struct {
	Kind Kind   `json:"kind"`
	Line int    `json:"line"`
	Path string `json:"path"`
}

// Code returns the kind code of the violation.
func (v Violation) Code() string {
	return v.Kind.String()
}

// Message returns the human-readable message for the violation's kind.
func (v Violation) Message() string {
	return v.Kind.Message()
}
