// Package build provides variables that are set at build-time with the
// -X ldflag. If the values are not given at build-time, they are
// determined from [debug.BuildInfo].
//
//	go build -ldflags "-X github.com/JackRBlack/physics-constant/internal/build.version=v1.2.0"
package build

import (
	"regexp"
	"runtime/debug"
	"strings"
	"sync"
)

var (
	pkg       string
	version   string
	buildTime string
)

var once sync.Once

var semverRe = regexp.MustCompile(`v?\d+(\.\d+){0,2}`)

func semver(v string) string {
	loc := semverRe.FindStringIndex(v)
	if loc == nil {
		return v
	}
	return v[loc[0]:loc[1]]
}

func load() {
	if version != "" {
		version = semver(version)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if pkg == "" {
		pkg = info.Main.Path
	}
	if version == "" {
		version = info.Main.Version
	}
	if buildTime == "" {
		for _, s := range info.Settings {
			if s.Key == "vcs.time" {
				buildTime = s.Value
				if t, ok := strings.CutSuffix(buildTime, "Z"); ok {
					buildTime = t + "+00:00"
				}
				break
			}
		}
	}
}

// Package returns the main module path.
func Package() string {
	once.Do(load)
	return pkg
}

// Version returns the version of the binary, or "(devel)" for a local build.
func Version() string {
	once.Do(load)
	if version == "" {
		return "(devel)"
	}
	return version
}

// BuildTime returns the commit time of the build, if known.
func BuildTime() string {
	once.Do(load)
	return buildTime
}
