// Package ui prints the per-notebook progress and outcome lines.
package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/tristendillon/nbstub/core/models"
)

type Reporter struct {
	out     io.Writer
	success *color.Color
	failure *color.Color
}

func NewReporter(out io.Writer, noColor bool) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	success := color.New(color.FgGreen)
	failure := color.New(color.FgRed)
	if noColor {
		success.DisableColor()
		failure.DisableColor()
	}
	return &Reporter{out: out, success: success, failure: failure}
}

func (r *Reporter) Processing(notebookPath string) {
	fmt.Fprintf(r.out, "Processing %s...\n", filepath.Base(notebookPath))
}

func (r *Reporter) Result(res models.Result) {
	if res.OK() {
		r.success.Fprintf(r.out, "  ✓ Generated %s\n", filepath.Base(res.Path))
		return
	}
	r.failure.Fprintf(r.out, "  ✗ Error: %v\n", res.Err)
}
