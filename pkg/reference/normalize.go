package reference

import (
	"path"
	"strings"

	"github.com/opencontainers/go-digest"

	"github.com/wuxler/imgref/pkg/errdefs"
	"github.com/wuxler/imgref/pkg/reference/internal"
)

// ParseNormalizedNamed parses a string into a named reference transforming
// a familiar name from Docker UI to a fully qualified reference: the
// "docker.io" domain is added when missing, "index.docker.io" is rewritten
// to "docker.io" and single-component names on "docker.io" get the
// "library/" namespace.
func ParseNormalizedNamed(s string) (Named, error) {
	if err := precheck(s); err != nil {
		return nil, err
	}
	if internal.AnchoredIdentifierRegexp.MatchString(s) {
		return nil, errdefs.Newf(ErrInvalidReference,
			"invalid repository name (%s), cannot specify 64-byte hexadecimal strings", s)
	}

	domain, remainder := splitDockerDomain(s)
	remoteName := remainder
	if i := strings.IndexByte(remainder, ':'); i > -1 {
		remoteName = remainder[:i]
	}
	if strings.ToLower(remoteName) != remoteName {
		return nil, errdefs.Newf(ErrReferenceInvalidFormat, "%w", ErrNameContainsUppercase)
	}

	ref, err := Parse(domain + "/" + remainder)
	if err != nil {
		return nil, err
	}
	named, ok := ref.(Named)
	if !ok || named.Name() == "" {
		return nil, errdefs.Newf(ErrReferenceHasNoName, "reference %s has no name", ref)
	}
	return named, nil
}

// ParseNamed parses s into a named reference and requires s to already be
// in its normalized, canonical form. "ubuntu" is rejected because it
// normalizes to "docker.io/library/ubuntu".
func ParseNamed(s string) (Named, error) {
	named, err := ParseNormalizedNamed(s)
	if err != nil {
		return nil, err
	}
	if named.String() != s {
		return nil, errdefs.Newf(ErrNameNotCanonical, "%q normalizes to %q", s, named)
	}
	return named, nil
}

// ParseAnyReference parses a reference string as a possible identifier,
// full digest, or familiar name. A 64-character hexadecimal identifier is
// read as a sha256 digest.
func ParseAnyReference(s string) (Reference, error) {
	if internal.AnchoredIdentifierRegexp.MatchString(s) {
		return DigestReference{digest: digest.Digest(string(digest.SHA256) + ":" + s)}, nil
	}
	if err := ValidateDigest(s); err == nil {
		return DigestReference{digest: digest.Digest(s)}, nil
	}
	return ParseNormalizedNamed(s)
}

// splitDockerDomain splits a repository name to domain and remote-name.
// If no valid domain is found, the default domain is used. Repository name
// needs to be already validated before.
func splitDockerDomain(name string) (domain, remainder string) {
	domain, remainder, found := strings.Cut(name, "/")
	if !found || !isDomain(domain) {
		domain, remainder = DefaultDomain, name
	}
	if domain == LegacyDefaultDomain {
		domain = DefaultDomain
	}
	if domain == DefaultDomain && !strings.ContainsRune(remainder, '/') {
		remainder = OfficialRepoName + "/" + remainder
	}
	return domain, remainder
}

// familiarize drops the default domain and collapses "library/<x>" to
// "<x>", then parses the result again so the familiar form goes through
// the same grammar as any other input. When the collapsed form does not
// parse, as for "docker.io/a_b.c/d" whose first path component would be
// read as an invalid hostname, the full repository name is kept.
func familiarize(repo Repository) Named {
	full := repo.Name()
	if repo.domain == DefaultDomain {
		repo.domain = ""
		if namespace, rest, ok := strings.Cut(repo.path, "/"); ok &&
			namespace == OfficialRepoName && !strings.ContainsRune(rest, '/') {
			repo.path = rest
		}
	}
	if named, ok := parseNamed(repo.Name()); ok {
		return named
	}
	if named, ok := parseNamed(full); ok {
		return named
	}
	return newNamedReference(full)
}

func parseNamed(s string) (Named, bool) {
	ref, err := Parse(s)
	if err != nil {
		return nil, false
	}
	named, ok := ref.(Named)
	return named, ok
}

// FamiliarString returns the familiar form of ref: the familiar name
// followed by the tag and digest the reference carries.
func FamiliarString(ref Reference) string {
	named, ok := ref.(Named)
	if !ok {
		return ref.String()
	}
	s := named.FamiliarName()
	if tag := ref.Tag(); tag != "" {
		s += ":" + tag
	}
	if dgst := ref.Digest(); dgst != "" {
		s += "@" + dgst.String()
	}
	return s
}

// FamiliarMatch reports whether ref matches the shell pattern, trying both
// the familiar string and the familiar name. See path.Match for the pattern
// syntax.
func FamiliarMatch(pattern string, ref Reference) (bool, error) {
	matched, err := path.Match(pattern, FamiliarString(ref))
	if named, ok := ref.(Named); ok && !matched {
		matched, _ = path.Match(pattern, named.FamiliarName())
	}
	return matched, err
}
