package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tristendillon/nbstub/core/models"
)

func TestReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, true)

	r.Processing("/data/notebooks/analysis.ipynb")
	r.Result(models.Result{Path: "/data/notebooks/analysis.pyi"})
	r.Result(models.Result{Err: errors.New("open missing.ipynb: no such file or directory")})

	assert.Equal(t, "Processing analysis.ipynb...\n"+
		"  ✓ Generated analysis.pyi\n"+
		"  ✗ Error: open missing.ipynb: no such file or directory\n", buf.String())
}
