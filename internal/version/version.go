// Package version carries the build version reported by --version.
package version

// Version is set at link time:
//
//	go build -ldflags "-X annotkit/internal/version.Version=1.2.0" ./cmd/...
var Version = "dev"
