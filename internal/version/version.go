// Package version carries the build version, overridable at link time:
//
//	go build -ldflags "-X prle/internal/version.Version=v1.2.3" ./cmd/prle
package version

var Version = "dev"
