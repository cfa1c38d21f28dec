package crypto

import (
	"github.com/pkg/errors"
)

var (
	// ErrMalformedKeyMaterial is returned when a key, a key set or a signature
	// does not decode into a valid group element.
	ErrMalformedKeyMaterial = errors.New("malformed key material")
	// ErrInvalidIndex is returned when a share index lies outside the range a
	// public key set commits to.
	ErrInvalidIndex = errors.New("invalid share index")
)

func malformed(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedKeyMaterial, format, args...)
}
