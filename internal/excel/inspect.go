package excel

import (
	"fmt"
	"slices"
)

// Summary describes the layout of a generated format workbook.
type Summary struct {
	Sheet     string
	Headers   []string
	Dropdowns map[string][]string // header -> allowed values
}

// Inspect reads the layout of a workbook held in memory. Any payload that
// does not open as an xlsx workbook is an error.
func Inspect(payload []byte) (*Summary, error) {
	editor, err := OpenBytes(payload)
	if err != nil {
		return nil, err
	}
	defer editor.Close()
	return summarize(editor)
}

// InspectFile is Inspect for a workbook on disk.
func InspectFile(path string) (*Summary, error) {
	editor, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer editor.Close()
	return summarize(editor)
}

func summarize(editor *Editor) (*Summary, error) {
	sheets := editor.GetSheetNames()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	sheet := editor.ActiveSheet()
	if !slices.Contains(sheets, sheet) {
		sheet = sheets[0]
	}

	headers, err := editor.GetColumnHeaders(sheet)
	if err != nil {
		return nil, err
	}

	byColumn, err := editor.GetDropdowns(sheet)
	if err != nil {
		return nil, err
	}

	dropdowns := make(map[string][]string, len(byColumn))
	for col, values := range byColumn {
		if col-1 < len(headers) {
			dropdowns[headers[col-1]] = values
		}
	}

	return &Summary{
		Sheet:     sheet,
		Headers:   headers,
		Dropdowns: dropdowns,
	}, nil
}

// MatchesHeaders reports whether the sheet starts with the expected headers.
func (s *Summary) MatchesHeaders(expected []string) bool {
	if len(s.Headers) < len(expected) {
		return false
	}
	return slices.Equal(s.Headers[:len(expected)], expected)
}
