// Package build holds values stamped into the livecheck binary at link time.
package build

// Version is the livecheck release, set with
// -ldflags "-X go.trai.ch/livecheck/internal/build.Version=<version>".
var Version = "dev"
