package reference

import (
	"github.com/opencontainers/go-digest"

	"github.com/wuxler/imgref/pkg/errdefs"
	"github.com/wuxler/imgref/pkg/reference/internal"
)

// WithName returns a named reference from name, validated against the name
// grammar without any normalization.
func WithName(name string) (Named, error) {
	if name == "" {
		return nil, ErrNameEmpty
	}
	if len(name) > NameTotalLengthMax {
		return nil, ErrNameTooLong
	}
	if !internal.AnchoredNameRegexp.MatchString(name) {
		return nil, ErrReferenceInvalidFormat
	}
	return newNamedReference(name), nil
}

// WithTag combines the name from named and the tag. A digest already on
// named is kept, yielding a TaggedCanonicalReference.
func WithTag(named Named, tag string) (Named, error) {
	if err := ValidateTag(tag); err != nil {
		return nil, err
	}
	base := TrimNamed(named)
	if dgst := named.Digest(); dgst != "" {
		return TaggedCanonicalReference{NamedReference: base, tag: tag, digest: dgst}, nil
	}
	return TaggedReference{NamedReference: base, tag: tag}, nil
}

// WithDigest combines the name from named and the digest. A tag already on
// named is kept, yielding a TaggedCanonicalReference.
func WithDigest(named Named, dgst digest.Digest) (Named, error) {
	if err := ValidateDigest(dgst.String()); err != nil {
		return nil, err
	}
	base := TrimNamed(named)
	if tag := named.Tag(); tag != "" {
		return TaggedCanonicalReference{NamedReference: base, tag: tag, digest: dgst}, nil
	}
	return CanonicalReference{NamedReference: base, digest: dgst}, nil
}

// TrimNamed removes any tag or digest from the named reference.
func TrimNamed(named Named) NamedReference {
	return NamedReference{name: named.Name(), repo: named.Repository()}
}

// TagNameOnly adds DefaultTag to a reference that carries neither a tag nor
// a digest. Any other reference is returned unchanged.
func TagNameOnly(named Named) Named {
	if named.Kind() != KindNamed {
		return named
	}
	return TaggedReference{NamedReference: TrimNamed(named), tag: DefaultTag}
}

// ValidateTag checks whether the tag is valid.
func ValidateTag(tag string) error {
	if !internal.AnchoredTagRegexp.MatchString(tag) {
		return errdefs.Newf(ErrTagInvalidFormat, "%q", tag)
	}
	return nil
}
