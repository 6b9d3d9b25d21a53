package huffman

import (
	"github.com/nuclio/errors"
)

// Every error returned by this package has one of these as its root cause,
// so callers can classify a failure with errors.RootCause or Kind.
var (
	// ErrInput reports input that cannot be encoded at all, such as an
	// empty input where a tree is required or an input needing a tree
	// deeper than the configured limit.
	ErrInput = errors.New("input error")

	// ErrFormat reports a container that is not in a recognized layout or
	// whose header, tree section, or payload is truncated.
	ErrFormat = errors.New("format error")

	// ErrCorruption reports a payload that walks off the serialized tree
	// before the expected number of bytes has been decoded.
	ErrCorruption = errors.New("corruption error")

	// ErrAlphabet reports input containing a byte value that the selected
	// layout reserves.
	ErrAlphabet = errors.New("alphabet error")
)

// Kind returns the classifying sentinel for err, or nil if err did not
// originate in this package.
func Kind(err error) error {
	if err == nil {
		return nil
	}
	switch cause := errors.RootCause(err); cause {
	case ErrInput, ErrFormat, ErrCorruption, ErrAlphabet:
		return cause
	default:
		return nil
	}
}
