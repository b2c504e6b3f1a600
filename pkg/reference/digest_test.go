package reference_test

import (
	"strings"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"

	"github.com/wuxler/imgref/pkg/reference"
)

func TestValidateDigest(t *testing.T) {
	testcases := []struct {
		input string
		err   error
	}{
		{input: "sha256:" + strings.Repeat("a", 64)},
		{input: "sha256:" + strings.Repeat("A", 64)},
		{input: "sha384:" + strings.Repeat("b", 96)},
		{input: "sha512:" + strings.Repeat("c", 128)},
		{input: "sha256:" + strings.Repeat("a", 63), err: reference.ErrDigestInvalidLength},
		{input: "sha256:" + strings.Repeat("a", 65), err: reference.ErrDigestInvalidLength},
		{input: "sha512:" + strings.Repeat("c", 64), err: reference.ErrDigestInvalidLength},
		{input: "md5:" + strings.Repeat("d", 32), err: reference.ErrDigestUnsupported},
		{input: "sha256+b64:" + strings.Repeat("e", 64), err: reference.ErrDigestUnsupported},
		{input: "sha256:" + strings.Repeat("a", 31), err: reference.ErrDigestInvalidFormat},
		{input: "sha256:" + strings.Repeat("g", 64), err: reference.ErrDigestInvalidFormat},
		{input: "sha256", err: reference.ErrDigestInvalidFormat},
		{input: ":" + strings.Repeat("a", 64), err: reference.ErrDigestInvalidFormat},
		{input: "", err: reference.ErrDigestInvalidFormat},
	}

	for _, tc := range testcases {
		t.Run(subTestName(tc.input, tc.err == nil), func(t *testing.T) {
			err := reference.ValidateDigest(tc.input)
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, reference.ErrInvalidReference)
		})
	}
}

func TestValidateDigest_Lengths(t *testing.T) {
	for _, alg := range reference.SupportedAlgorithms() {
		want := alg.Size() * 2
		for n := 32; n <= 160; n++ {
			err := reference.ValidateDigest(string(alg) + ":" + strings.Repeat("f", n))
			if n == want {
				assert.NoError(t, err, "%s with %d hex characters", alg, n)
			} else {
				assert.ErrorIs(t, err, reference.ErrDigestInvalidLength, "%s with %d hex characters", alg, n)
			}
		}
	}
}

func TestValidateDigest_AgreesWithGoDigest(t *testing.T) {
	for _, alg := range reference.SupportedAlgorithms() {
		dgst := alg.FromString("imgref")
		assert.NoError(t, dgst.Validate())
		assert.NoError(t, reference.ValidateDigest(dgst.String()))
	}
	assert.Equal(t, []digest.Algorithm{digest.SHA256, digest.SHA384, digest.SHA512}, reference.SupportedAlgorithms())
}
