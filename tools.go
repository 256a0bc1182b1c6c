//go:build tools

package tools

// CLI tools the repo expects on PATH. Neither is imported by any package,
// so neither appears in go.mod.
//
// - github.com/matryer/moq: regenerates the service-layer mocks (go:generate)
// - github.com/pressly/goose/v3/cmd/goose: manual migration runs
