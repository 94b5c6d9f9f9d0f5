package probe

import "runtime/debug"

var (
	// Version is the current probe version.
	Version = buildVersion("github.com/go-kratos/probe")
)

// buildVersion retrieves the version of the specified module path from build info.
// The main module is checked first since the probe usually runs as its own binary.
func buildVersion(path string) string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "devel"
	}
	if buildInfo.Main.Path == path && buildInfo.Main.Version != "" {
		return buildInfo.Main.Version
	}
	for _, d := range buildInfo.Deps {
		if d.Path == path {
			if d.Replace != nil {
				return d.Replace.Version
			}
			return d.Version
		}
	}
	return "devel"
}
