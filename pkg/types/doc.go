// Package types holds the interfaces shared across wallpaper-controller
// packages. Keeping them here lets the resolver, lister and record store
// depend on an FS abstraction instead of the os package directly.
package types
