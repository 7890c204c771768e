// Dataagent CI/CD
//
// Package main provides reproducible builds and tests locally and in GitHub actions.
// It is the main harness for handling nearly all dev operations.
package main

import (
	"context"

	"dagger/dataagent/internal/dagger"
)

// Dataagent is the main module for the Dataagent CI/CD pipeline
type Dataagent struct {
	// Project source directory
	//
	// +private
	Source *dagger.Directory
}

// New creates a new Dataagent CI/CD module instance
func New(
	// Project source directory.
	//
	// +defaultPath="/"
	// +ignore=[".git", ".direnv", ".devenv", "build", "tmp"]
	source *dagger.Directory,
) *Dataagent {
	return &Dataagent{
		Source: source,
	}
}

// goContainer returns a Debian Bookworm-based Go container with gcc,
// libsqlite3-dev, CGO enabled, and the project source mounted. sqlite-vec
// needs the C toolchain, so tests run with CGO on.
//
// It is the shared foundation for tests, builds, and linting.
func (d *Dataagent) goContainer() *dagger.Container {
	return dag.Container().
		From("golang:1.25-bookworm").
		WithExec([]string{"apt-get", "update"}).
		WithExec([]string{"apt-get", "install", "-y", "gcc", "libsqlite3-dev"}).
		WithEnvVariable("CGO_ENABLED", "1").
		WithEnvVariable("PATH", "/go/bin:$PATH", dagger.ContainerWithEnvVariableOpts{Expand: true}).
		WithMountedCache("/go/pkg/mod", dag.CacheVolume("go-mod")).
		WithMountedCache("/root/.cache/go-build", dag.CacheVolume("go-build")).
		WithWorkdir("/src").
		WithDirectory("/src", d.Source)
}

// Test runs the dataagent unit tests via "go test"
func (d *Dataagent) Test(ctx context.Context) (string, error) {
	return d.goContainer().
		WithExec([]string{"go", "test", "-v", "./..."}).
		Stdout(ctx)
}
