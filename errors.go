package unisig

import "errors"

var (
	// ErrInvalidText indicates input that is not valid UTF-8 text.
	ErrInvalidText = errors.New("unisig: text must be valid UTF-8")
	// ErrMaxLength indicates a length limit outside (0, MaxLengthLimit].
	ErrMaxLength = errors.New("unisig: max length out of range")
)

// ErrorKind classifies construction errors.
type ErrorKind int

const (
	KindNone  ErrorKind = iota // Not a construction error.
	KindType                   // The input has the wrong type or encoding.
	KindRange                  // A numeric argument is out of range.
)

// KindOf returns the kind of a construction error returned by [New] or
// [NewBytes].
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrInvalidText):
		return KindType
	case errors.Is(err, ErrMaxLength):
		return KindRange
	}
	return KindNone
}
