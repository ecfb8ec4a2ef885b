// Package apperror defines the error categories a batch run can produce.
// Only InputDirectory, EmptyDirectory and PersistenceFailure end a run;
// the others stay isolated to the file or subject they came from.
package apperror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindInputDirectory
	KindEmptyDirectory
	KindDecodeFailure
	KindAnalysisUnavailable
	KindPersistenceFailure
)

func (k Kind) String() string {
	switch k {
	case KindInputDirectory:
		return "InputDirectory"
	case KindEmptyDirectory:
		return "EmptyDirectory"
	case KindDecodeFailure:
		return "DecodeFailure"
	case KindAnalysisUnavailable:
		return "AnalysisUnavailable"
	case KindPersistenceFailure:
		return "PersistenceFailure"
	default:
		return "Unknown"
	}
}

// Error carries a category plus whatever location is known about the failure.
type Error struct {
	Kind    Kind
	Subject string
	Path    string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Subject != "" {
		msg += " subject=" + e.Subject
	}
	if e.Path != "" {
		msg += " path=" + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err under kind.
func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Newf builds an error of kind from a format string.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// WithSubject returns a copy of e tagged with subject.
func (e *Error) WithSubject(subject string) *Error {
	cp := *e
	cp.Subject = subject
	return &cp
}

// WithPath returns a copy of e tagged with path.
func (e *Error) WithPath(path string) *Error {
	cp := *e
	cp.Path = path
	return &cp
}

// KindOf reports the category of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given category.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
