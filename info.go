package graphbridge

import (
	"runtime"
	"runtime/debug"
	"sync"
)

// Info describes the library build. All fields are computed once from the
// binary's build metadata and never change afterwards.
type Info struct {
	Name      string
	Version   string
	GoVersion string
	Revision  string
	BuildTime string
}

var (
	buildInfo     Info
	buildInfoOnce sync.Once
)

const modulePath = "github.com/plexgraph/graph-bridge"

// BuildInfo returns the library's static build metadata.
func BuildInfo() Info {
	buildInfoOnce.Do(func() {
		buildInfo = Info{
			Name:      modulePath,
			Version:   "(devel)",
			GoVersion: runtime.Version(),
		}

		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}

		if bi.Main.Path == modulePath && bi.Main.Version != "" {
			buildInfo.Version = bi.Main.Version
		}
		for _, dep := range bi.Deps {
			if dep.Path == modulePath {
				buildInfo.Version = dep.Version
			}
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				buildInfo.Revision = s.Value
			case "vcs.time":
				buildInfo.BuildTime = s.Value
			}
		}
	})
	return buildInfo
}
