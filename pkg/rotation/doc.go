// Package rotation implements the wallpaper rotation loop.
//
// A cycle resolves the state directory, lists the image directory, picks
// the image after the recorded one (wrapping at the end), records it and
// starts the wallpaper setter without waiting for it. The loop then sleeps
// for the configured interval. The first cycle runs immediately.
//
// Only a state directory that cannot be resolved stops the loop. Empty or
// unreadable image directories and persistence failures are logged and
// retried on the next cycle.
package rotation
