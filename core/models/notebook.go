package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const CellTypeCode = "code"

var jsonNull = []byte("null")

type Notebook struct {
	Cells []Cell `json:"cells"`
}

// UnmarshalJSON treats an absent "cells" key as no cells but rejects a null
// document, null "cells" or a null cell.
func (n *Notebook) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return errors.New("notebook is null")
	}

	var raw struct {
		Cells json.RawMessage `json:"cells"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Cells == nil {
		n.Cells = nil
		return nil
	}
	if bytes.Equal(raw.Cells, jsonNull) {
		return errors.New("cells is null")
	}

	var cells []json.RawMessage
	if err := json.Unmarshal(raw.Cells, &cells); err != nil {
		return err
	}

	n.Cells = make([]Cell, 0, len(cells))
	for i, rawCell := range cells {
		if bytes.Equal(rawCell, jsonNull) {
			return fmt.Errorf("cell %d is null", i)
		}
		var cell Cell
		if err := json.Unmarshal(rawCell, &cell); err != nil {
			return fmt.Errorf("cell %d: %w", i, err)
		}
		n.Cells = append(n.Cells, cell)
	}
	return nil
}

type Cell struct {
	CellType string     `json:"cell_type"`
	Source   CellSource `json:"source"`
}

func (c Cell) IsCode() bool {
	return c.CellType == CellTypeCode
}

// CellSource holds the source fragments of a cell. nbformat stores them as a
// list of lines, but a single string is accepted too. An absent source is
// empty; a null one is an error.
type CellSource []string

func (s *CellSource) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		return errors.New("source is null")
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = CellSource{single}
		return nil
	}

	var fragments []string
	if err := json.Unmarshal(data, &fragments); err != nil {
		return err
	}
	*s = fragments
	return nil
}

// Text joins the fragments with no separator; they already carry their line endings.
func (s CellSource) Text() string {
	return strings.Join(s, "")
}
