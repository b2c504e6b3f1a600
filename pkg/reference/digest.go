package reference

import (
	_ "crypto/sha256"
	_ "crypto/sha512"
	"strings"

	"github.com/opencontainers/go-digest"

	"github.com/wuxler/imgref/pkg/reference/internal"
)

// digestSizes is the known-algorithm table: the byte length of the checksum
// produced by each supported algorithm.
var digestSizes = map[digest.Algorithm]int{
	digest.SHA256: 32,
	digest.SHA384: 48,
	digest.SHA512: 64,
}

// ValidateDigest checks that s is a well-formed digest of a known algorithm
// whose encoded portion has exactly the length that algorithm produces.
func ValidateDigest(s string) error {
	if !internal.AnchoredDigestRegexp.MatchString(s) {
		return ErrDigestInvalidFormat
	}

	i := strings.IndexByte(s, ':')
	// case: "sha256:" with no hex.
	if i <= 0 || i+1 == len(s) {
		return ErrDigestInvalidFormat
	}

	size, ok := digestSizes[digest.Algorithm(s[:i])]
	if !ok {
		return ErrDigestUnsupported
	}
	if size*2 != len(s[i+1:]) {
		return ErrDigestInvalidLength
	}
	return nil
}

// SupportedAlgorithms returns the digest algorithms accepted by
// ValidateDigest.
func SupportedAlgorithms() []digest.Algorithm {
	return []digest.Algorithm{digest.SHA256, digest.SHA384, digest.SHA512}
}
