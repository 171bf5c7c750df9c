package models

type ExtractedSignature struct {
	Name      string
	Signature string
}

type StubFile struct {
	Path         string
	NotebookName string
	Content      string
}

// Result is the outcome of processing one notebook. Exactly one of Path and
// Err is set.
type Result struct {
	NotebookPath string
	Path         string
	Signatures   int
	Err          error
}

func (r Result) OK() bool {
	return r.Err == nil
}
