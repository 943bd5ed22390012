package cli

import (
	"io"

	"github.com/arthur-debert/wallpaper-controller/pkg/ui"
)

// ReportError renders a command failure to w, styled when w is a terminal.
func ReportError(w io.Writer, err error) {
	r, rerr := ui.NewRenderer(ui.FormatAuto, w)
	if rerr != nil {
		return
	}
	_ = r.RenderError(err)
}
