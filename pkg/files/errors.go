package files

import (
	"errors"
	"fmt"
)

// Kind categorizes a persistence failure.
type Kind int

const (
	KindUnknown Kind = iota
	// KindOpen means the file could not be opened or read.
	KindOpen
	// KindParse means the content is not well-formed delimited text.
	KindParse
	// KindSave means writing, encoding or flushing the file failed.
	KindSave
	// KindConfig means the settings file could not be read or decoded.
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open error"
	case KindParse:
		return "parse error"
	case KindSave:
		return "save error"
	case KindConfig:
		return "configuration error"
	default:
		return "unknown error"
	}
}

// Error describes a failed load or save of a specific file.
type Error struct {
	Op   string
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a persistence error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
