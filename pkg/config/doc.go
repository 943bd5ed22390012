// Package config handles configuration management for wallpaper-controller.
//
// Values are layered with koanf, later sources overriding earlier ones:
//
//  1. built-in defaults (interval 120s, setter "swww img", listing order)
//  2. WALLPAPER_CONTROLLER_* environment variables, e.g.
//     WALLPAPER_CONTROLLER_INTERVAL=300 or WALLPAPER_CONTROLLER_IMAGE_DIR=~/walls
//  3. command line flags that were explicitly set
//
// There is no configuration file.
package config
