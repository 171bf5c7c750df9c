package template_engine

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"text/template"
)

type TemplateRef struct {
	Path  string
	IsDir bool
}

func (tr TemplateRef) IsFile() bool {
	return !tr.IsDir
}

type TemplateEngine struct {
	funcMap template.FuncMap
}

func getDefaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"trim": strings.TrimSpace,
	}
}

func NewTemplateEngine() *TemplateEngine {
	return &TemplateEngine{funcMap: getDefaultFuncMap()}
}

func (te *TemplateEngine) parse(templateRef TemplateRef) (*template.Template, error) {
	if err := te.ValidateTemplate(templateRef); err != nil {
		return nil, err
	}
	if !templateRef.IsFile() {
		return nil, fmt.Errorf("cannot render directory reference: %s", templateRef.Path)
	}

	templatePath := path.Join("templates", templateRef.Path)
	content, err := TemplateFS.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file %s: %w", templatePath, err)
	}

	tmpl, err := template.New(path.Base(templateRef.Path)).Funcs(te.funcMap).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", templateRef.Path, err)
	}
	return tmpl, nil
}

func (te *TemplateEngine) Render(templateRef TemplateRef, w io.Writer, data interface{}) error {
	tmpl, err := te.parse(templateRef)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", templateRef.Path, err)
	}
	return nil
}

func (te *TemplateEngine) RenderString(templateRef TemplateRef, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := te.Render(templateRef, &buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// GenerateFile renders into outputPath, truncating any existing file. The
// parent directory must already exist. Nothing is written if rendering fails.
func (te *TemplateEngine) GenerateFile(templateRef TemplateRef, outputPath string, data interface{}) error {
	content, err := te.RenderString(templateRef, data)
	if err != nil {
		return err
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}
	defer outputFile.Close()

	if _, err := io.WriteString(outputFile, content); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outputPath, err)
	}

	return outputFile.Close()
}

func (te *TemplateEngine) ValidateTemplate(templateRef TemplateRef) error {
	templatePath := path.Join("templates", templateRef.Path)

	info, err := fs.Stat(TemplateFS, templatePath)
	if err != nil {
		return fmt.Errorf("template not found: %s", templateRef.Path)
	}

	if info.IsDir() != templateRef.IsDir {
		return fmt.Errorf("template reference type mismatch for %s: expected dir=%t, got dir=%t",
			templateRef.Path, templateRef.IsDir, info.IsDir())
	}

	return nil
}
