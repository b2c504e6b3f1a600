package reference

import (
	"strings"

	"github.com/opencontainers/go-digest"

	"github.com/wuxler/imgref/pkg/reference/internal"
	"github.com/wuxler/imgref/pkg/util/xregexp"
)

// invalidRefChars are rejected outright once a reference looks like it
// starts with a hostname.
const invalidRefChars = `?[]{}~!#$%^&*()+|<>,'"`

// Parse parses s and returns the narrowest Reference variant that fits the
// name, tag and digest it contains. Parse does not normalize: "ubuntu" stays
// "ubuntu" with an empty domain. Use ParseNormalizedNamed for that.
func Parse(s string) (Reference, error) {
	if err := precheck(s); err != nil {
		return nil, err
	}

	matches, ok := xregexp.Submatches(internal.ReferenceRegexp, s)
	if !ok {
		if internal.ReferenceRegexp.MatchString(strings.ToLower(s)) {
			return nil, ErrNameContainsUppercase
		}
		return nil, ErrReferenceInvalidFormat
	}

	name, tag := matches[0], matches[1]
	if len(name) > NameTotalLengthMax {
		return nil, ErrNameTooLong
	}

	var dgst digest.Digest
	if matches[2] != "" {
		if err := ValidateDigest(matches[2]); err != nil {
			return nil, err
		}
		dgst = digest.Digest(matches[2])
	}

	ref := newReference(name, tag, dgst)
	if ref == nil {
		return nil, ErrNameEmpty
	}
	return ref, nil
}

// precheck rejects empty input and syntactically invalid hostnames before
// the generic grammar runs, since the grammar would otherwise read a bad
// hostname as a path component.
func precheck(s string) error {
	if s == "" {
		return ErrNameEmpty
	}
	hostname, _, found := strings.Cut(s, "/")
	if !found || !strings.Contains(hostname, ".") {
		return nil
	}
	if strings.ContainsAny(s, invalidRefChars) {
		return ErrReferenceInvalidFormat
	}
	if !internal.AnchoredHostnameRegexp.MatchString(hostname) {
		return ErrReferenceInvalidFormat
	}
	return nil
}

// splitRepository splits a validated name into domain and path. The part
// before the first "/" is a domain only when it contains "." or ":" or is
// "localhost".
func splitRepository(name string) Repository {
	domain, path, found := strings.Cut(name, "/")
	if !found || !isDomain(domain) {
		return Repository{path: name}
	}
	return Repository{domain: domain, path: path}
}

func isDomain(s string) bool {
	return strings.ContainsAny(s, ".:") || s == "localhost"
}

// splitHostname splits name with the anchored name grammar.
func splitHostname(name string) (hostname, path string) {
	matches, ok := xregexp.Submatches(internal.AnchoredNameRegexp, name)
	if !ok || len(matches) != 2 {
		return "", name
	}
	return matches[0], matches[1]
}
