package reference_test

import (
	"strings"
	"testing"

	distref "github.com/distribution/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxler/imgref/pkg/reference"
)

// The normalized forms must agree with github.com/distribution/reference,
// the implementation used by the Docker engine and registry.

func TestConformance_Normalize(t *testing.T) {
	for _, tc := range normalizeCases {
		for _, s := range []string{tc.FamiliarName, tc.FullName, tc.AmbiguousName} {
			if s == "" {
				continue
			}
			t.Run(subTestName(s, true), func(t *testing.T) {
				want, err := distref.ParseNormalizedNamed(s)
				require.NoError(t, err)
				got, err := reference.ParseNormalizedNamed(s)
				require.NoError(t, err)

				assert.Equal(t, want.String(), got.String())
				assert.Equal(t, distref.FamiliarName(want), got.FamiliarName())
				assert.Equal(t, distref.Domain(want), got.Domain())
				assert.Equal(t, distref.Path(want), got.Path())
			})
		}
	}
}

func TestConformance_Validity(t *testing.T) {
	inputs := append(append([]string{}, validRepoNames...), invalidRepoNames...)
	for _, s := range inputs {
		t.Run(subTestName(s, true), func(t *testing.T) {
			_, wantErr := distref.ParseNormalizedNamed(s)
			_, gotErr := reference.ParseNormalizedNamed(s)
			assert.Equal(t, wantErr == nil, gotErr == nil, "want error %v, got error %v", wantErr, gotErr)
		})
	}
}

func TestConformance_FamiliarString(t *testing.T) {
	hex64 := strings.Repeat("7", 64)
	inputs := []string{
		"ubuntu:18.04",
		"library/redis@sha256:" + hex64,
		"index.docker.io/foo/bar:v1@sha256:" + hex64,
		"example.com:8000/team/app:dev",
		"localhost/app",
	}

	for _, s := range inputs {
		t.Run(subTestName(s, true), func(t *testing.T) {
			want, err := distref.ParseNormalizedNamed(s)
			require.NoError(t, err)
			got, err := reference.ParseNormalizedNamed(s)
			require.NoError(t, err)

			assert.Equal(t, want.String(), got.String())
			assert.Equal(t, distref.FamiliarString(want), reference.FamiliarString(got))
			assert.Equal(t, distref.FamiliarString(distref.TagNameOnly(want)), reference.FamiliarString(reference.TagNameOnly(got)))
		})
	}
}
