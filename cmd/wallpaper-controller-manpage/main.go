package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/wallpaper-controller/internal/cli"
	"github.com/arthur-debert/wallpaper-controller/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "WALLPAPER-CONTROLLER",
		Section: "1",
		Source:  "wallpaper-controller " + version.Version,
		Manual:  "wallpaper-controller manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
