package notebook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tristendillon/nbstub/core/logger"
	"github.com/tristendillon/nbstub/core/models"
)

var (
	ErrNotebookRead  = errors.New("cannot read notebook")
	ErrNotebookParse = errors.New("cannot parse notebook")
)

func Load(path string) (*models.Notebook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotebookRead, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	var nb models.Notebook
	if err := dec.Decode(&nb); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrNotebookParse, path, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w %s: extra data after offset %d", ErrNotebookParse, path, dec.InputOffset())
	}

	logger.Debug("Loaded %s with %d cells", path, len(nb.Cells))
	return &nb, nil
}
