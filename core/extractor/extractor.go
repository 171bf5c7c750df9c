package extractor

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/tristendillon/nbstub/core/logger"
	"github.com/tristendillon/nbstub/core/models"
)

const DefaultExcludeSubstring = "test_"

// ws covers Unicode whitespace; RE2's \s is ASCII only.
const ws = `[\s\v\p{Z}\x1c-\x1f\x85]`

// Only single-line parameter lists match. Decorators, methods and nested
// functions are not recognised because the def must start the line.
var defPattern = regexp.MustCompile(`(?m)^def` + ws + `+([\p{L}\p{N}_]+)` + ws + `*\((.*?)\)(?:` + ws + `*->` + ws + `*([^:]+))?:`)

type Options struct {
	// ExcludeSubstring drops any function whose name contains it anywhere.
	// Empty disables the filter.
	ExcludeSubstring string
}

func DefaultOptions() Options {
	return Options{ExcludeSubstring: DefaultExcludeSubstring}
}

func Extract(nb *models.Notebook, opts Options) []models.ExtractedSignature {
	signatures := []models.ExtractedSignature{}
	if nb == nil {
		return signatures
	}

	for i, cell := range nb.Cells {
		if !cell.IsCode() {
			continue
		}
		found := ExtractSource(cell.Source.Text(), opts)
		logger.Debug("Cell %d: %d signatures", i, len(found))
		signatures = append(signatures, found...)
	}

	return signatures
}

func ExtractSource(source string, opts Options) []models.ExtractedSignature {
	var signatures []models.ExtractedSignature

	for _, m := range defPattern.FindAllStringSubmatchIndex(source, -1) {
		name := source[m[2]:m[3]]
		params := source[m[4]:m[5]]

		if opts.ExcludeSubstring != "" && strings.Contains(name, opts.ExcludeSubstring) {
			logger.Debug("Skipping %s", name)
			continue
		}

		var signature string
		if m[6] >= 0 {
			returnType := strings.TrimFunc(source[m[6]:m[7]], isSpace)
			signature = fmt.Sprintf("def %s(%s) -> %s: ...", name, params, returnType)
		} else {
			signature = fmt.Sprintf("def %s(%s): ...", name, params)
		}

		logger.Debug("Found %s", signature)
		signatures = append(signatures, models.ExtractedSignature{
			Name:      name,
			Signature: signature,
		})
	}

	return signatures
}

// isSpace reports the characters trimmed from a return annotation.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
