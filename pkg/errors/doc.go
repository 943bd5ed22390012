// Package errors provides coded, structured errors for wallpaper-controller.
//
// Every failure that crosses a package boundary carries an ErrorCode so that
// callers (and tests) can branch on the category rather than on message text.
// The rotation loop uses the code to decide whether a failure ends the
// process (ErrStateDir) or only skips the current cycle.
package errors
