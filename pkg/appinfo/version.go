// Package appinfo reports build information of the application and the
// reference defaults it was built with.
package appinfo

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/opencontainers/go-digest"
	"github.com/samber/lo"

	"github.com/wuxler/imgref/pkg/cmdhelper"
	"github.com/wuxler/imgref/pkg/reference"
)

// Set by LDFLAGS, for example:
//
//	go build -ldflags '-X github.com/wuxler/imgref/pkg/appinfo.version=v1.0.0'
//
// Unset values fall back to the module build information.
var (
	version   = ""
	gitCommit = ""
	buildDate = ""
)

const (
	develVersion = "dev"
	digestModule = "github.com/opencontainers/go-digest"
)

// Info describes a build of the application.
type Info struct {
	Name      string        `json:"name" yaml:"name"`
	Version   string        `json:"version" yaml:"version"`
	Commit    string        `json:"commit,omitempty" yaml:"commit,omitempty"`
	BuildDate string        `json:"build_date,omitempty" yaml:"build_date,omitempty"`
	GoVersion string        `json:"go_version" yaml:"go_version"`
	Platform  string        `json:"platform" yaml:"platform"`
	Reference ReferenceInfo `json:"reference" yaml:"reference"`
}

// ReferenceInfo lists the normalization defaults and digest support
// compiled into the reference parser.
type ReferenceInfo struct {
	DefaultDomain    string   `json:"default_domain" yaml:"default_domain"`
	OfficialRepoName string   `json:"official_repo_name" yaml:"official_repo_name"`
	DefaultTag       string   `json:"default_tag" yaml:"default_tag"`
	DigestAlgorithms []string `json:"digest_algorithms" yaml:"digest_algorithms"`
	DigestModule     string   `json:"digest_module,omitempty" yaml:"digest_module,omitempty"`
}

// Get returns the Info of the application named name.
func Get(name string) Info {
	info := Info{
		Name:      name,
		Version:   version,
		Commit:    gitCommit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Reference: ReferenceInfo{
			DefaultDomain:    reference.DefaultDomain,
			OfficialRepoName: reference.OfficialRepoName,
			DefaultTag:       reference.DefaultTag,
			DigestAlgorithms: lo.Map(reference.SupportedAlgorithms(), func(alg digest.Algorithm, _ int) string {
				return alg.String()
			}),
		},
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(&info, bi)
	}
	if info.Version == "" {
		info.Version = develVersion
	}
	return info
}

func fillFromBuildInfo(info *Info, bi *debug.BuildInfo) {
	if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	if info.Commit == "" {
		if setting, ok := lo.Find(bi.Settings, func(s debug.BuildSetting) bool {
			return s.Key == "vcs.revision"
		}); ok {
			info.Commit = setting.Value
		}
	}
	if dep, ok := lo.Find(bi.Deps, func(m *debug.Module) bool {
		return m.Path == digestModule
	}); ok {
		info.Reference.DigestModule = dep.Path + "@" + dep.Version
	}
}

// Short returns the version followed by the abbreviated commit.
func (i Info) Short() string {
	if len(i.Commit) >= 8 {
		return i.Version + "-" + i.Commit[:8]
	}
	return i.Version
}

// Write writes the info into w in the given format: "text" (or empty),
// "json" or "yaml". short only affects the text format.
func (i Info) Write(w io.Writer, format string, short bool) error {
	return cmdhelper.Encode(w, format, i, func(w io.Writer) error {
		if short {
			_, err := fmt.Fprintln(w, i.Short())
			return err
		}
		_, err := io.WriteString(w, i.text())
		return err
	})
}

func (i Info) text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", i.Name, i.Short())
	line := func(key, value string) {
		if value != "" {
			fmt.Fprintf(&b, "  %-18s: %s\n", key, value)
		}
	}
	line("Commit", i.Commit)
	line("BuildDate", i.BuildDate)
	line("GoVersion", i.GoVersion)
	line("Platform", i.Platform)
	line("DefaultDomain", i.Reference.DefaultDomain)
	line("OfficialRepoName", i.Reference.OfficialRepoName)
	line("DefaultTag", i.Reference.DefaultTag)
	line("DigestAlgorithms", strings.Join(i.Reference.DigestAlgorithms, ", "))
	line("DigestModule", i.Reference.DigestModule)
	return b.String()
}
