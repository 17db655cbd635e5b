package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrClosed is returned by every mutating operation after a handle has been
// disposed with Close.
var ErrClosed = errors.New("file handle is closed")

// IncompleteIdentityError reports an operation that needed a fully set
// identity. Missing holds the unset fields in the order name, extension,
// directory. Op names what could not be initialised (save, watcher, path).
type IncompleteIdentityError struct {
	Op      string
	Missing []string
}

func (e *IncompleteIdentityError) Error() string {
	return fmt.Sprintf("not enough file info to initialise the %s: missing %s", e.Op, strings.Join(e.Missing, " and "))
}

// FileDeletedError reports that the watched file was deleted from the
// filesystem or moved out of its directory without the handle being told.
// It carries the identity at the time of the deletion so the caller can
// decide whether to recover onto a new path.
type FileDeletedError struct {
	Name      string
	Extension string
	Directory string
}

func (e *FileDeletedError) Error() string {
	return fmt.Sprintf("the file %s was either deleted or moved from %s", e.Name+e.Extension, e.Directory)
}

// EncodeError wraps a codec failure while turning data into bytes.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode data: %v", e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// DecodeError wraps a codec failure while turning bytes back into data.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode data: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
