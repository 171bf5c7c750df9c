package template_engine

import "embed"

//go:embed templates
var TemplateFS embed.FS

type stubTemplates struct {
	PYI TemplateRef
}

var TEMPLATES = struct {
	STUB stubTemplates
}{
	STUB: stubTemplates{
		PYI: TemplateRef{Path: "stub/stub.pyi.tmpl"},
	},
}
