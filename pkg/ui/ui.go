// Package ui renders command output in different formats.
// It supports terminal (rich), text (plain), JSON and YAML output.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/wallpaper-controller/pkg/status"
	"gopkg.in/yaml.v3"
)

// Renderer writes status reports and errors to an output.
type Renderer interface {
	// RenderStatus renders a wallpaper pointer report
	RenderStatus(r *status.Report) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error
}

// NewRenderer creates a new renderer based on the specified format.
// It detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		// Not a file, nothing to style for
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return &textRenderer{w: output, styled: true}, nil
	case FormatText:
		return &textRenderer{w: output}, nil
	case FormatJSON:
		return &jsonRenderer{w: output}, nil
	case FormatYAML:
		return &yamlRenderer{w: output}, nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

type textRenderer struct {
	w      io.Writer
	styled bool
}

func (r *textRenderer) style(name, s string) string {
	if !r.styled {
		return s
	}
	return GetStyle(name).Render(s)
}

func (r *textRenderer) row(label, value string) string {
	if r.styled {
		return GetStyle("Label").Render(label) + value
	}
	return fmt.Sprintf("%-14s%s", label, value)
}

func (r *textRenderer) RenderStatus(rep *status.Report) error {
	var b strings.Builder

	b.WriteString(r.style("Header", "Wallpaper status"))
	b.WriteString("\n")
	if !r.styled {
		b.WriteString("\n")
	}

	b.WriteString(r.row("state dir", r.style("FilePath", rep.StateDir)) + "\n")

	if rep.HasRecord {
		current := r.style("FilePath", rep.Current)
		if !rep.ImageExists {
			current += " " + r.style("Warning", "(missing)")
		}
		b.WriteString(r.row("current", current) + "\n")
	} else {
		b.WriteString(r.row("current", r.style("Muted", "none")) + "\n")
	}

	switch {
	case rep.LinkTarget == "":
		b.WriteString(r.row("symlink", r.style("Muted", "none")) + "\n")
	case rep.InSync:
		b.WriteString(r.row("symlink", r.style("Success", rep.LinkTarget)) + "\n")
	default:
		b.WriteString(r.row("symlink", r.style("Warning", rep.LinkTarget+" (out of sync)")) + "\n")
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *textRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.w, r.style("Error", "Error: ")+err.Error())
	return werr
}

type jsonRenderer struct {
	w io.Writer
}

func (r *jsonRenderer) RenderStatus(rep *status.Report) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func (r *jsonRenderer) RenderError(err error) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]string{"error": err.Error()})
}

type yamlRenderer struct {
	w io.Writer
}

func (r *yamlRenderer) RenderStatus(rep *status.Report) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}

func (r *yamlRenderer) RenderError(err error) error {
	enc := yaml.NewEncoder(r.w)
	if eerr := enc.Encode(map[string]string{"error": err.Error()}); eerr != nil {
		return eerr
	}
	return enc.Close()
}
