package figures

import "github.com/pkg/errors"

var (
	// ErrOutOfRange is returned by Array when an index is not within
	// [0, Len()) or when an element is requested from an empty array.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidArgument is returned by figure constructors when the
	// geometry they are given is not valid for the shape.
	ErrInvalidArgument = errors.New("invalid argument")
)
