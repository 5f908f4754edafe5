package version

import (
	"strings"

	"github.com/fatih/color"
)

// Build metadata of the uriql CLI; overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = []color.Attribute{color.FgYellow, color.Bold}
	minorColor = []color.Attribute{color.FgGreen, color.Bold}
	patchColor = []color.Attribute{color.FgBlue, color.Bold}
)

// Info is the trimmed build metadata; empty fields mean unknown.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

// Current returns the metadata with "dev" standing in for an empty version.
func Current() Info {
	v := strings.TrimSpace(Version)
	if v == "" {
		v = "dev"
	}
	return Info{
		Version:   v,
		GitCommit: strings.TrimSpace(GitCommit),
		BuildDate: strings.TrimSpace(BuildDate),
	}
}

// Colored renders v with major, minor and patch numbers in distinct colors.
// Versions that are not dotted triples come back unchanged.
func Colored(v string, enabled bool) string {
	core, suffix := v, ""
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		core, suffix = v[:i], v[i:]
	}
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return v
	}
	paint := func(attrs []color.Attribute, s string) string {
		if !enabled {
			return s
		}
		c := color.New(attrs...)
		c.EnableColor()
		return c.Sprint(s)
	}
	return paint(majorColor, parts[0]) + "." + paint(minorColor, parts[1]) + "." + paint(patchColor, parts[2]) + suffix
}
