package reference

import (
	"fmt"

	"github.com/opencontainers/go-digest"
)

const (
	// NameTotalLengthMax is the maximum total number of characters in a repository name.
	NameTotalLengthMax = 255

	// TagLengthMax is the maximum number of characters in a tag.
	TagLengthMax = 128

	// DefaultDomain is the registry domain assumed for names without one.
	DefaultDomain = "docker.io"

	// LegacyDefaultDomain is the legacy alias of DefaultDomain, rewritten
	// during normalization.
	LegacyDefaultDomain = "index.docker.io"

	// OfficialRepoName is the namespace of official images on DefaultDomain.
	OfficialRepoName = "library"

	// DefaultTag is the tag added by TagNameOnly.
	DefaultTag = "latest"
)

// Kind identifies the variant of a Reference.
type Kind int

const (
	// KindDigest is a reference made of a digest only.
	KindDigest Kind = iota + 1
	// KindNamed is a repository name without tag or digest.
	KindNamed
	// KindTagged is a repository name with a tag.
	KindTagged
	// KindCanonical is a repository name with a digest.
	KindCanonical
	// KindTaggedCanonical is a repository name with both a tag and a digest.
	KindTaggedCanonical
)

var kindNames = map[Kind]string{
	KindDigest:          "digest",
	KindNamed:           "named",
	KindTagged:          "tagged",
	KindCanonical:       "canonical",
	KindTaggedCanonical: "tagged-canonical",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Reference is an opaque object reference identifier that may include
// modifiers such as a hostname, name, tag, and digest.
//
// The set of implementations is closed: DigestReference, NamedReference,
// TaggedReference, CanonicalReference and TaggedCanonicalReference.
type Reference interface {
	fmt.Stringer

	// Kind reports which variant the reference is.
	Kind() Kind

	// Name returns the full repository name, or "" for a DigestReference.
	Name() string

	// Tag returns the tag, or "" when the reference carries none.
	Tag() string

	// Digest returns the digest, or "" when the reference carries none.
	Digest() digest.Digest

	isReference()
}

// Named is a Reference with a repository name.
type Named interface {
	Reference

	// Repository returns the name split into domain and path.
	Repository() Repository

	// Domain returns the registry domain, "" when the name has none.
	Domain() string

	// Path returns the repository path without the domain.
	Path() string

	// SplitHostname splits the name into hostname and path with the
	// anchored name grammar.
	SplitHostname() (hostname, path string)

	// Familiar returns the repository as a name-only reference in its
	// abbreviated form, dropping the default domain and official namespace.
	Familiar() Named

	// FamiliarName returns the string form of Familiar.
	FamiliarName() string
}

// Repository is a repository name split into registry domain and path.
type Repository struct {
	domain string
	path   string
}

// Domain returns the registry domain, possibly empty.
func (r Repository) Domain() string {
	return r.domain
}

// Path returns the repository path without the domain.
func (r Repository) Path() string {
	return r.path
}

// Name returns the path when the domain is empty, "domain/path" otherwise.
func (r Repository) Name() string {
	if r.domain == "" {
		return r.path
	}
	return r.domain + "/" + r.path
}

func (r Repository) String() string {
	return r.Name()
}

// DigestReference is a reference made of a digest only.
type DigestReference struct {
	digest digest.Digest
}

var _ Reference = DigestReference{}

func (d DigestReference) String() string {
	return d.digest.String()
}

// Kind returns KindDigest.
func (d DigestReference) Kind() Kind { return KindDigest }

// Name returns "".
func (d DigestReference) Name() string { return "" }

// Tag returns "".
func (d DigestReference) Tag() string { return "" }

// Digest returns the digest.
func (d DigestReference) Digest() digest.Digest { return d.digest }

func (DigestReference) isReference() {}

// NamedReference is a repository name without tag or digest.
type NamedReference struct {
	name string
	repo Repository
}

var _ Named = NamedReference{}

func newNamedReference(name string) NamedReference {
	return NamedReference{name: name, repo: splitRepository(name)}
}

func (n NamedReference) String() string {
	return n.name
}

// Kind returns KindNamed.
func (n NamedReference) Kind() Kind { return KindNamed }

// Name returns the full repository name.
func (n NamedReference) Name() string { return n.name }

// Tag returns "".
func (n NamedReference) Tag() string { return "" }

// Digest returns "".
func (n NamedReference) Digest() digest.Digest { return "" }

// Repository returns the name split into domain and path.
func (n NamedReference) Repository() Repository { return n.repo }

// Domain returns the registry domain of the name.
func (n NamedReference) Domain() string { return n.repo.domain }

// Path returns the repository path of the name.
func (n NamedReference) Path() string { return n.repo.path }

// SplitHostname splits the name into hostname and path with the anchored
// name grammar. A name that does not match is returned whole as the path.
func (n NamedReference) SplitHostname() (hostname, path string) {
	return splitHostname(n.name)
}

// Familiar returns the abbreviated repository name as a NamedReference.
func (n NamedReference) Familiar() Named {
	return familiarize(n.repo)
}

// FamiliarName returns the abbreviated repository name.
func (n NamedReference) FamiliarName() string {
	return n.Familiar().String()
}

func (NamedReference) isReference() {}

// TaggedReference is a repository name with a tag.
type TaggedReference struct {
	NamedReference
	tag string
}

var _ Named = TaggedReference{}

func (t TaggedReference) String() string {
	return t.name + ":" + t.tag
}

// Kind returns KindTagged.
func (t TaggedReference) Kind() Kind { return KindTagged }

// Tag returns the tag.
func (t TaggedReference) Tag() string { return t.tag }

// CanonicalReference is a repository name with a digest.
type CanonicalReference struct {
	NamedReference
	digest digest.Digest
}

var _ Named = CanonicalReference{}

func (c CanonicalReference) String() string {
	return c.name + "@" + c.digest.String()
}

// Kind returns KindCanonical.
func (c CanonicalReference) Kind() Kind { return KindCanonical }

// Digest returns the digest.
func (c CanonicalReference) Digest() digest.Digest { return c.digest }

// TaggedCanonicalReference is a repository name with both a tag and a
// digest. The digest identifies the content; the tag is kept as given.
type TaggedCanonicalReference struct {
	NamedReference
	tag    string
	digest digest.Digest
}

var _ Named = TaggedCanonicalReference{}

func (r TaggedCanonicalReference) String() string {
	return r.name + ":" + r.tag + "@" + r.digest.String()
}

// Kind returns KindTaggedCanonical.
func (r TaggedCanonicalReference) Kind() Kind { return KindTaggedCanonical }

// Tag returns the tag.
func (r TaggedCanonicalReference) Tag() string { return r.tag }

// Digest returns the digest.
func (r TaggedCanonicalReference) Digest() digest.Digest { return r.digest }

// newReference selects the narrowest variant for the fields present. It
// returns nil when neither a name nor a digest is given.
func newReference(name, tag string, dgst digest.Digest) Reference {
	if name == "" {
		if dgst != "" {
			return DigestReference{digest: dgst}
		}
		return nil
	}

	named := newNamedReference(name)
	switch {
	case tag == "" && dgst == "":
		return named
	case tag == "":
		return CanonicalReference{NamedReference: named, digest: dgst}
	case dgst == "":
		return TaggedReference{NamedReference: named, tag: tag}
	default:
		return TaggedCanonicalReference{NamedReference: named, tag: tag, digest: dgst}
	}
}
