// Package internal holds the reference grammar: the lexical fragments and the
// anchored matchers compiled from them. All values are built once at package
// initialization and must be treated as read-only.
package internal

import (
	"regexp"

	"github.com/wuxler/imgref/pkg/util/xregexp"
)

var (
	// re compiles the string to a regular expression.
	re          = regexp.MustCompile
	literal     = xregexp.Literal
	expression  = xregexp.Expression
	optional    = xregexp.Optional
	repeated    = xregexp.Repeated
	alternation = xregexp.Alternation
	capture     = xregexp.Capture
	anchored    = xregexp.Anchored
)

var (
	// AlphaNumericRegexp matches the alpha numeric atom of name components.
	AlphaNumericRegexp = re(alphaNumeric)

	// SeparatorRegexp matches the separators allowed between alpha numeric
	// atoms of a name component.
	SeparatorRegexp = re(separator)

	// NameComponentRegexp restricts registry path component names to start
	// with at least one letter or number, with following parts able to be
	// separated by one period, one or two underscore and multiple dashes.
	NameComponentRegexp = re(nameComponent)

	// HostnameComponentRegexp restricts the registry domain component of a
	// repository name to start with a component as defined by HostnameRegexp.
	HostnameComponentRegexp = re(hostnameComponent)

	// HostnameRegexp defines the structure of potential domain components
	// that may be part of image names. This is purposely a subset of what is
	// allowed by DNS to ensure backwards compatibility with Docker image
	// names.
	HostnameRegexp = re(hostname)

	// AnchoredHostnameRegexp matches a whole string as a hostname with an
	// optional port.
	AnchoredHostnameRegexp = re(anchored(hostname))

	// TagRegexp matches valid tag names. From [docker/docker:graph/tags.go].
	//
	// [docker/docker:graph/tags.go]: https://github.com/moby/moby/blob/v1.6.0/graph/tags.go#L26-L28
	TagRegexp = re(tag)

	// AnchoredTagRegexp matches valid tag names, anchored at the start and
	// end of the matched string.
	AnchoredTagRegexp = re(anchored(tag))

	// DigestRegexp matches valid digests.
	DigestRegexp = re(digest)

	// AnchoredDigestRegexp matches valid digests, anchored at the start and
	// end of the matched string.
	AnchoredDigestRegexp = re(anchored(digest))

	// NameRegexp is the format for the name component of references,
	// including an optional hostname and port, but without tag or digest
	// suffix.
	NameRegexp = re(name)

	// AnchoredNameRegexp is used to parse a name value, capturing the
	// hostname and trailing components.
	AnchoredNameRegexp = re(anchoredName)

	// ReferenceRegexp is the full supported format of a reference. The regexp
	// is anchored and has capturing groups for name, tag, and digest
	// components.
	ReferenceRegexp = re(reference)

	// IdentifierRegexp is the format for string identifier used as a
	// content addressable identifier using sha256. These identifiers
	// are like digests without the algorithm, since sha256 is used.
	IdentifierRegexp = re(identifier)

	// AnchoredIdentifierRegexp is used to check or match an identifier value,
	// anchored at start and end of string.
	AnchoredIdentifierRegexp = re(anchored(identifier))
)

const (
	// alphaNumeric defines the alpha numeric atom, typically a
	// component of names. This only allows lower case characters and digits.
	alphaNumeric = `[a-z0-9]+`

	// tag matches valid tag names. The string counterpart for TagRegexp.
	tag = `[\w][\w.-]{0,127}`

	// digest matches well-formed digests, including algorithm (e.g. "sha256:<encoded>").
	digest = `[A-Za-z][A-Za-z0-9]*(?:[-_+.][A-Za-z][A-Za-z0-9]*)*[:][[:xdigit:]]{32,}`

	// identifier is the format for a content addressable identifier using sha256.
	identifier = `([a-f0-9]{64})`

	// port defines the port number atom without port separator.
	port = `[0-9]+`
)

var (
	// separator defines the separators allowed to be embedded in name
	// components. This allow one period, one or two underscore and multiple
	// dashes.
	separator = alternation(`[._]`, `__`, `[-]*`)

	// nameComponent restricts registry path component names to start
	// with at least one letter or number, with following parts able to be
	// separated by a separator.
	//
	// Format: alpha-numeric [separator alpha-numeric]*
	nameComponent = expression(
		alphaNumeric,
		optional(repeated(separator, alphaNumeric)),
	)

	// hostnameComponent is a single DNS label: it starts and ends with an
	// alpha numeric character and may contain hyphens in between.
	hostnameComponent = alternation(
		`[a-zA-Z0-9]`,
		`[a-zA-Z0-9][a-zA-Z0-9-]*[a-zA-Z0-9]`,
	)

	// hostname is one or more hostname components joined by dots, with an
	// optional port number.
	//
	// Format: hostname-component ['.' hostname-component]* [':' port-number]
	hostname = expression(
		hostnameComponent,
		optional(repeated(literal(`.`), hostnameComponent)),
		optional(literal(`:`), port),
	)

	// path is one or more name components joined by forward slashes.
	//
	// Format: name-component ['/' name-component]*
	path = expression(
		nameComponent,
		optional(repeated(literal(`/`), nameComponent)),
	)

	// name matches the repository name with an optional registry hostname.
	//
	// Format: [hostname '/'] name-component ['/' name-component]*
	name = expression(
		optional(hostname, literal(`/`)),
		path,
	)

	anchoredName = anchored(
		optional(capture(hostname), literal(`/`)),
		capture(path),
	)

	// reference matches the whole reference string.
	//
	// Format: name [ ":" tag ] [ "@" digest ]
	reference = anchored(
		capture(name),
		optional(literal(`:`), capture(tag)),
		optional(literal(`@`), capture(digest)),
	)
)
