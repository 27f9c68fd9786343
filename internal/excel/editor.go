package excel

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Editor wraps a workbook opened read-only for inspection.
type Editor struct {
	file     *excelize.File
	filepath string
}

// OpenFile opens an existing Excel file
func OpenFile(filepath string) (*Editor, error) {
	file, err := excelize.OpenFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &Editor{
		file:     file,
		filepath: filepath,
	}, nil
}

// OpenBytes opens a workbook held in memory, such as an HTTP response body.
func OpenBytes(payload []byte) (*Editor, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("empty workbook payload")
	}
	file, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	return &Editor{file: file}, nil
}

// GetSheetNames returns all sheet names in the workbook
func (e *Editor) GetSheetNames() []string {
	return e.file.GetSheetList()
}

// ActiveSheet returns the name of the sheet the workbook opens on.
func (e *Editor) ActiveSheet() string {
	return e.file.GetSheetName(e.file.GetActiveSheetIndex())
}

// GetColumnHeaders returns all column headers (first row)
func (e *Editor) GetColumnHeaders(sheet string) ([]string, error) {
	rows, err := e.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get first row: %w", err)
	}
	if len(rows) == 0 {
		return []string{}, nil
	}
	return rows[0], nil
}

// GetDropdowns returns the list validations of a sheet keyed by the
// 1-based column number of the first cell they apply to.
func (e *Editor) GetDropdowns(sheet string) (map[int][]string, error) {
	validations, err := e.file.GetDataValidations(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get data validations: %w", err)
	}

	dropdowns := make(map[int][]string)
	for _, dv := range validations {
		if dv == nil || dv.Type != "list" {
			continue
		}
		ref := strings.Fields(dv.Sqref)
		if len(ref) == 0 {
			continue
		}
		first := strings.SplitN(ref[0], ":", 2)[0]
		col, _, err := excelize.CellNameToCoordinates(first)
		if err != nil {
			continue
		}
		dropdowns[col] = parseListFormula(dv.Formula1)
	}
	return dropdowns, nil
}

// Close closes the Excel file
func (e *Editor) Close() error {
	return e.file.Close()
}

// parseListFormula turns an inline list formula such as "A,B" back into its
// items. Range references like Sheet2!$A$1:$A$9 come back as a single item.
func parseListFormula(formula string) []string {
	formula = strings.TrimSpace(formula)
	formula = strings.TrimPrefix(formula, "<formula1>")
	formula = strings.TrimSuffix(formula, "</formula1>")
	formula = html.UnescapeString(formula)

	if len(formula) < 2 || !strings.HasPrefix(formula, `"`) || !strings.HasSuffix(formula, `"`) {
		if formula == "" {
			return []string{}
		}
		return []string{formula}
	}

	inner := formula[1 : len(formula)-1]
	if inner == "" {
		return []string{}
	}
	return strings.Split(inner, ",")
}
