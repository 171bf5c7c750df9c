package generator

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/tristendillon/nbstub/core/config"
	"github.com/tristendillon/nbstub/core/extractor"
	"github.com/tristendillon/nbstub/core/logger"
	"github.com/tristendillon/nbstub/core/models"
	"github.com/tristendillon/nbstub/core/notebook"
	"github.com/tristendillon/nbstub/core/template_engine"
)

const StubExtension = ".pyi"

var ErrStubWrite = errors.New("cannot write stub")

type StubGenerator struct {
	cfg    *config.Config
	engine *template_engine.TemplateEngine
}

type stubTemplateData struct {
	NotebookName string
	Imports      string
	Signatures   []models.ExtractedSignature
}

func NewStubGenerator(cfg *config.Config) *StubGenerator {
	if cfg == nil {
		cfg = config.Default()
	}
	return &StubGenerator{cfg: cfg, engine: template_engine.NewTemplateEngine()}
}

// NotebookName is the file name of notebookPath without its extension. A
// leading dot does not start an extension, so ".ipynb" keeps its whole name.
func NotebookName(notebookPath string) string {
	base := filepath.Base(notebookPath)
	ext := filepath.Ext(base)
	if ext == base || ext == "." {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

func (sg *StubGenerator) OutputPath(notebookPath string) string {
	outputDir := sg.cfg.OutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(notebookPath)
	}
	return filepath.Join(outputDir, NotebookName(notebookPath)+StubExtension)
}

func (sg *StubGenerator) templateData(notebookPath string) (*stubTemplateData, error) {
	nb, err := notebook.Load(notebookPath)
	if err != nil {
		return nil, err
	}

	signatures := extractor.Extract(nb, extractor.Options{ExcludeSubstring: sg.cfg.ExcludeSubstring})
	if len(signatures) == 0 {
		logger.Warn("No function definitions found in %s", notebookPath)
	} else {
		logger.Debug("Extracted %d signatures from %s", len(signatures), notebookPath)
	}

	return &stubTemplateData{
		NotebookName: NotebookName(notebookPath),
		Imports:      sg.cfg.Imports,
		Signatures:   signatures,
	}, nil
}

func (sg *StubGenerator) BuildStub(notebookPath string) (*models.StubFile, []models.ExtractedSignature, error) {
	data, err := sg.templateData(notebookPath)
	if err != nil {
		return nil, nil, err
	}

	content, err := sg.engine.RenderString(template_engine.TEMPLATES.STUB.PYI, data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to render stub for %s: %w", notebookPath, err)
	}

	return &models.StubFile{
		Path:         sg.OutputPath(notebookPath),
		NotebookName: data.NotebookName,
		Content:      content,
	}, data.Signatures, nil
}

// GenerateStub writes the stub for notebookPath and returns the path written.
// An existing stub is overwritten.
func (sg *StubGenerator) GenerateStub(notebookPath string) (string, int, error) {
	data, err := sg.templateData(notebookPath)
	if err != nil {
		return "", 0, err
	}

	outputPath := sg.OutputPath(notebookPath)
	if err := sg.engine.GenerateFile(template_engine.TEMPLATES.STUB.PYI, outputPath, data); err != nil {
		return "", 0, fmt.Errorf("%w %s: %w", ErrStubWrite, outputPath, err)
	}

	logger.Debug("Wrote %s", outputPath)
	return outputPath, len(data.Signatures), nil
}

// Process generates the stub for one notebook and reports the outcome as a
// Result instead of an error.
func (sg *StubGenerator) Process(notebookPath string) models.Result {
	res := models.Result{NotebookPath: notebookPath}

	path, count, err := sg.GenerateStub(notebookPath)
	if err != nil {
		res.Err = err
		return res
	}

	res.Path = path
	res.Signatures = count
	return res
}

// Preview writes the stub text to w without touching the filesystem.
func (sg *StubGenerator) Preview(notebookPath string, w io.Writer) models.Result {
	res := models.Result{NotebookPath: notebookPath}

	stub, signatures, err := sg.BuildStub(notebookPath)
	if err != nil {
		res.Err = err
		return res
	}
	if _, err := io.WriteString(w, stub.Content); err != nil {
		res.Err = fmt.Errorf("failed to write preview: %w", err)
		return res
	}

	res.Path = stub.Path
	res.Signatures = len(signatures)
	return res
}
