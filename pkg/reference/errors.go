package reference

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidReference is matched by every error returned from this
	// package. It is also returned on its own for references that are
	// ambiguous, such as a bare 64-character hexadecimal name.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrReferenceInvalidFormat represents an error while trying to parse a string as a reference.
	ErrReferenceInvalidFormat error = kindError("invalid reference format")

	// ErrTagInvalidFormat represents an error while trying to parse a string as a tag.
	ErrTagInvalidFormat error = kindError("invalid tag format")

	// ErrNameContainsUppercase is returned for invalid repository names that contain uppercase characters.
	ErrNameContainsUppercase error = kindError("repository name must be lowercase")

	// ErrNameEmpty is returned for empty, invalid repository names.
	ErrNameEmpty error = kindError("repository name must have at least one component")

	// ErrNameTooLong is returned when a repository name is longer than NameTotalLengthMax.
	ErrNameTooLong error = kindError(fmt.Sprintf("repository name must not be more than %v characters", NameTotalLengthMax))

	// ErrReferenceHasNoName is returned when a normalized parse yields a
	// reference without a name component.
	ErrReferenceHasNoName error = kindError("reference has no name")

	// ErrNameNotCanonical is returned when a name is not canonical.
	ErrNameNotCanonical error = kindError("repository name must be canonical")

	// ErrDigestInvalidFormat is returned for malformed digests.
	ErrDigestInvalidFormat error = kindError("invalid digest format")

	// ErrDigestUnsupported is returned when the digest algorithm is unknown.
	ErrDigestUnsupported error = kindError("unsupported digest algorithm")

	// ErrDigestInvalidLength is returned when the digest hex length does not
	// match the algorithm.
	ErrDigestInvalidLength error = kindError("invalid checksum digest length")
)

// kindError is a distinct reference failure kind. Every kind also matches
// ErrInvalidReference.
type kindError string

func (e kindError) Error() string {
	return string(e)
}

// Is reports whether target is the ErrInvalidReference class.
func (e kindError) Is(target error) bool {
	return target == ErrInvalidReference
}
