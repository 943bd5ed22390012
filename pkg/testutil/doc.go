// Package testutil provides utilities for testing wallpaper-controller components.
//
// Key components:
//   - TestEnvironment: image directory, home and XDG data directories plus a
//     matching FS, either in memory (afero) or isolated in t.TempDir
//   - RecordingSetter: a setter.Setter that records applied images
//   - CreateFile / CreateDir / CreateSymlink: real filesystem fixtures
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated when real symlinks or directory
//     enumeration order matter
//   - Environment variables are handed to code through Env, never set on
//     the process
package testutil
