// Package reference parses, validates and normalizes container image
// references such as "docker.io/library/ubuntu:latest@sha256:<hex>".
//
// # Grammar
//
//	reference                       := name [ ":" tag ] [ "@" digest ]
//	name                            := [hostname '/'] component ['/' component]*
//	hostname                        := hostcomponent ['.' hostcomponent]* [':' port-number]
//	hostcomponent                   := /([a-zA-Z0-9]|[a-zA-Z0-9][a-zA-Z0-9-]*[a-zA-Z0-9])/
//	port-number                     := /[0-9]+/
//	component                       := alpha-numeric [separator alpha-numeric]*
//	alpha-numeric                   := /[a-z0-9]+/
//	separator                       := /[_.]|__|[-]*/
//
//	tag                             := /[\w][\w.-]{0,127}/
//
//	digest                          := digest-algorithm ":" digest-hex
//	digest-algorithm                := digest-algorithm-component [ digest-algorithm-separator digest-algorithm-component ]*
//	digest-algorithm-separator      := /[+.-_]/
//	digest-algorithm-component      := /[A-Za-z][A-Za-z0-9]*/
//	digest-hex                      := /[0-9a-fA-F]{32,}/ ; At least 128 bit digest value
//
//	identifier                      := /[a-f0-9]{64}/
//
// # Variants
//
// A parsed Reference is always one of a closed set of variants, selected by
// which of name, tag and digest are present:
//
//	DigestReference           <digest>
//	NamedReference            <name>
//	TaggedReference           <name>:<tag>
//	CanonicalReference        <name>@<digest>
//	TaggedCanonicalReference  <name>:<tag>@<digest>
//
// All values are immutable and safe for concurrent use.
package reference
