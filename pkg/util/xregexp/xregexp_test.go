package xregexp_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wuxler/imgref/pkg/util/xregexp"
)

func TestOperators(t *testing.T) {
	testcases := map[string]struct {
		got  string
		want string
	}{
		"literal escapes":      {got: xregexp.Literal(`a.b:c`), want: `a\.b:c`},
		"expression":           {got: xregexp.Expression(`a`, `b`, `c`), want: `abc`},
		"optional":             {got: xregexp.Optional(`a`, `b`), want: `(?:ab)?`},
		"repeated":             {got: xregexp.Repeated(`a`), want: `(?:a)+`},
		"alternation":          {got: xregexp.Alternation(`a`, `bc`, `d*`), want: `(?:a|bc|d*)`},
		"group":                {got: xregexp.Group(`a`, `b`), want: `(?:ab)`},
		"capture":              {got: xregexp.Capture(`a`, `b`), want: `(ab)`},
		"anchored":             {got: xregexp.Anchored(`a`), want: `^a$`},
		"optional of repeated": {got: xregexp.Optional(xregexp.Repeated(`x`)), want: `(?:(?:x)+)?`},
	}

	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestSubmatches(t *testing.T) {
	re := regexp.MustCompile(`^(\w+)(?::(\w+))?$`)

	testcases := map[string]struct {
		target string
		want   []string
		ok     bool
	}{
		"all groups":       {target: "repo:tag", want: []string{"repo", "tag"}, ok: true},
		"optional missing": {target: "repo", want: []string{"repo", ""}, ok: true},
		"no match":         {target: "repo:", ok: false},
	}

	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			got, ok := xregexp.Submatches(re, tc.target)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
