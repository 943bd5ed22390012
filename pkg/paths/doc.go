// Package paths provides centralized path handling for wallpaper-controller.
//
// It owns the layout of the state directory:
//
//   - <state_dir>/current_wallpaper          plain text, path of the current image
//   - <state_dir>/current_wallpaper.symlink  symlink to that image
//
// # State directory resolution
//
// The Resolver picks the first usable candidate:
//
//   - the directory given with --wallpaper-id-dir, if it already exists
//   - $XDG_DATA_HOME/wallpaper_controller (created on demand)
//   - $HOME/.wallpaper_controller (created on demand)
//
// The state directory may be shared with other tools reading the pointer
// file, but this program assumes it is the only writer.
//
// # Usage
//
//	r := paths.NewResolver(filesystem.NewOS(), nil)
//	dir, err := r.Resolve("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	record := paths.RecordPath(dir)   // $XDG_DATA_HOME/wallpaper_controller/current_wallpaper
package paths
