// Package logging configures zerolog for wallpaper-controller.
//
// Output goes to stderr through a console writer and, when it can be
// created, to an append-only log file under the XDG state directory.
package logging
