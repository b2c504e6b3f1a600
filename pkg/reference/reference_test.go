package reference_test

import (
	"strings"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxler/imgref/pkg/reference"
)

func subTestName(tName string, good bool, notes ...string) string {
	if tName == "" {
		tName = "empty"
	}
	if len(tName) > 64 {
		tName = tName[:61] + "..."
	}
	if len(notes) > 0 {
		tName = strings.Join(notes, " ") + " " + tName
	}
	if good {
		tName = "(good) " + tName
	} else {
		tName = "(bad) " + tName
	}
	return tName
}

func TestParse(t *testing.T) {
	hex64 := strings.Repeat("f", 64)
	hex128 := strings.Repeat("f", 128)

	testcases := []struct {
		input      string
		err        error
		kind       reference.Kind
		repository string
		hostname   string
		domain     string
		path       string
		tag        string
		digest     digest.Digest
	}{
		{
			input:      "test_com",
			kind:       reference.KindNamed,
			repository: "test_com",
			path:       "test_com",
		},
		{
			input:      "test.com:tag",
			kind:       reference.KindTagged,
			repository: "test.com",
			path:       "test.com",
			tag:        "tag",
		},
		{
			input:      "test.com:5000",
			kind:       reference.KindTagged,
			repository: "test.com",
			path:       "test.com",
			tag:        "5000",
		},
		{
			input:      "test.com/repo:tag",
			kind:       reference.KindTagged,
			repository: "test.com/repo",
			hostname:   "test.com",
			domain:     "test.com",
			path:       "repo",
			tag:        "tag",
		},
		{
			input:      "test:5000/repo",
			kind:       reference.KindNamed,
			repository: "test:5000/repo",
			hostname:   "test:5000",
			domain:     "test:5000",
			path:       "repo",
		},
		{
			input:      "test:5000/repo:tag",
			kind:       reference.KindTagged,
			repository: "test:5000/repo",
			hostname:   "test:5000",
			domain:     "test:5000",
			path:       "repo",
			tag:        "tag",
		},
		{
			input:      "test:5000/repo@sha256:" + hex64,
			kind:       reference.KindCanonical,
			repository: "test:5000/repo",
			hostname:   "test:5000",
			domain:     "test:5000",
			path:       "repo",
			digest:     digest.Digest("sha256:" + hex64),
		},
		{
			input:      "test:5000/repo:tag@sha256:" + hex64,
			kind:       reference.KindTaggedCanonical,
			repository: "test:5000/repo",
			hostname:   "test:5000",
			domain:     "test:5000",
			path:       "repo",
			tag:        "tag",
			digest:     digest.Digest("sha256:" + hex64),
		},
		{
			input:      "localhost/repo:tag",
			kind:       reference.KindTagged,
			repository: "localhost/repo",
			hostname:   "localhost",
			domain:     "localhost",
			path:       "repo",
			tag:        "tag",
		},
		{
			input: "",
			err:   reference.ErrNameEmpty,
		},
		{
			input: ":justtag",
			err:   reference.ErrReferenceInvalidFormat,
		},
		{
			input: "@sha256:" + hex64,
			err:   reference.ErrReferenceInvalidFormat,
		},
		{
			input: "repo@sha256:" + strings.Repeat("f", 34),
			err:   reference.ErrDigestInvalidLength,
		},
		{
			input: "validname@invaliddigest:" + hex64,
			err:   reference.ErrDigestUnsupported,
		},
		{
			input: "repo@sha256:" + strings.Repeat("g", 64),
			err:   reference.ErrReferenceInvalidFormat,
		},
		{
			input: strings.Repeat("a/", 128) + "a:tag",
			err:   reference.ErrNameTooLong,
		},
		{
			input:      strings.Repeat("a/", 127) + "a:tag-puts-this-over-max",
			kind:       reference.KindTagged,
			repository: strings.Repeat("a/", 127) + "a",
			hostname:   "a",
			path:       strings.Repeat("a/", 127) + "a",
			tag:        "tag-puts-this-over-max",
		},
		{
			input: "aa/asdf$$^/aa",
			err:   reference.ErrReferenceInvalidFormat,
		},
		{
			input:      "sub-dom1.foo.com/bar/baz/quux",
			kind:       reference.KindNamed,
			repository: "sub-dom1.foo.com/bar/baz/quux",
			hostname:   "sub-dom1.foo.com",
			domain:     "sub-dom1.foo.com",
			path:       "bar/baz/quux",
		},
		{
			input:      "sub-dom1.foo.com/bar/baz/quux:some-long-tag",
			kind:       reference.KindTagged,
			repository: "sub-dom1.foo.com/bar/baz/quux",
			hostname:   "sub-dom1.foo.com",
			domain:     "sub-dom1.foo.com",
			path:       "bar/baz/quux",
			tag:        "some-long-tag",
		},
		{
			input:      "b.gcr.io/test.example.com/my-app:test.example.com",
			kind:       reference.KindTagged,
			repository: "b.gcr.io/test.example.com/my-app",
			hostname:   "b.gcr.io",
			domain:     "b.gcr.io",
			path:       "test.example.com/my-app",
			tag:        "test.example.com",
		},
		{
			input:      "xn--n3h.com/myimage:xn--n3h.com",
			kind:       reference.KindTagged,
			repository: "xn--n3h.com/myimage",
			hostname:   "xn--n3h.com",
			domain:     "xn--n3h.com",
			path:       "myimage",
			tag:        "xn--n3h.com",
		},
		{
			input:      "xn--7o8h.com/myimage:xn--7o8h.com@sha512:" + hex128,
			kind:       reference.KindTaggedCanonical,
			repository: "xn--7o8h.com/myimage",
			hostname:   "xn--7o8h.com",
			domain:     "xn--7o8h.com",
			path:       "myimage",
			tag:        "xn--7o8h.com",
			digest:     digest.Digest("sha512:" + hex128),
		},
		{
			input:      "foo_bar.com:8080",
			kind:       reference.KindTagged,
			repository: "foo_bar.com",
			path:       "foo_bar.com",
			tag:        "8080",
		},
		{
			input:      "foo/foo_bar.com:8080",
			kind:       reference.KindTagged,
			repository: "foo/foo_bar.com",
			hostname:   "foo",
			path:       "foo/foo_bar.com",
			tag:        "8080",
		},
		{
			input: "123.dkr.ecr.eu-west-1.amazonaws.com:lol/abc:d",
			err:   reference.ErrReferenceInvalidFormat,
		},
		{
			input: "docker.artifactory.us.foo.mycompany.com/bar/node?18",
			err:   reference.ErrReferenceInvalidFormat,
		},
		{
			input: "Uppercase:tag",
			err:   reference.ErrNameContainsUppercase,
		},
		{
			input: "test:5000/Uppercase/lowercase:tag",
			err:   reference.ErrNameContainsUppercase,
		},
		{
			input:      "lowercase:Uppercase",
			kind:       reference.KindTagged,
			repository: "lowercase",
			path:       "lowercase",
			tag:        "Uppercase",
		},
	}

	for _, tc := range testcases {
		t.Run(subTestName(tc.input, tc.err == nil), func(t *testing.T) {
			ref, err := reference.Parse(tc.input)
			if tc.err != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.err)
				assert.ErrorIs(t, err, reference.ErrInvalidReference)
				assert.Nil(t, ref)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.kind, ref.Kind())
			assert.Equal(t, tc.input, ref.String())
			assert.Equal(t, tc.repository, ref.Name())
			assert.Equal(t, tc.tag, ref.Tag())
			assert.Equal(t, tc.digest, ref.Digest())

			named, ok := ref.(reference.Named)
			require.True(t, ok, "parsed reference must be named")
			assert.Equal(t, tc.domain, named.Domain())
			assert.Equal(t, tc.path, named.Path())
			assert.Equal(t, tc.repository, named.Repository().Name())

			hostname, _ := named.SplitHostname()
			assert.Equal(t, tc.hostname, hostname)
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"ubuntu",
		"library/ubuntu:18.04",
		"docker.io/library/ubuntu@sha256:" + strings.Repeat("a", 64),
		"localhost:5000/team/app:v1.2.3@sha384:" + strings.Repeat("b", 96),
		"registry.example.com/a/b/c:latest",
	}

	for _, input := range inputs {
		t.Run(subTestName(input, true), func(t *testing.T) {
			first, err := reference.Parse(input)
			require.NoError(t, err)
			second, err := reference.Parse(first.String())
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestParse_NameLengthLimit(t *testing.T) {
	for n := reference.NameTotalLengthMax - 2; n <= reference.NameTotalLengthMax+2; n++ {
		name := "a" + strings.Repeat("b", n-1)
		ref, err := reference.Parse(name + ":tag")
		if n > reference.NameTotalLengthMax {
			assert.ErrorIs(t, err, reference.ErrNameTooLong, "length %d", n)
			continue
		}
		if assert.NoError(t, err, "length %d", n) {
			assert.Equal(t, name, ref.Name())
		}
	}
}

func TestRepository_Name(t *testing.T) {
	ref, err := reference.Parse("ubuntu")
	require.NoError(t, err)
	named := ref.(reference.Named)
	assert.Equal(t, "", named.Repository().Domain())
	assert.Equal(t, "ubuntu", named.Repository().Path())
	assert.Equal(t, "ubuntu", named.Repository().String())

	ref, err = reference.Parse("example.com/team/ubuntu:tag")
	require.NoError(t, err)
	named = ref.(reference.Named)
	assert.Equal(t, "example.com", named.Repository().Domain())
	assert.Equal(t, "team/ubuntu", named.Repository().Path())
	assert.Equal(t, "example.com/team/ubuntu", named.Repository().Name())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "digest", reference.KindDigest.String())
	assert.Equal(t, "named", reference.KindNamed.String())
	assert.Equal(t, "tagged", reference.KindTagged.String())
	assert.Equal(t, "canonical", reference.KindCanonical.String())
	assert.Equal(t, "tagged-canonical", reference.KindTaggedCanonical.String())
	assert.Equal(t, "Kind(0)", reference.Kind(0).String())
}
