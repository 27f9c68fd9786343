package columns

import (
	"encoding/json"
	"strings"
)

// ColumnType is the input mode of a custom column.
type ColumnType string

const (
	TypeFree     ColumnType = "free"
	TypeDropdown ColumnType = "dropdown"
)

// Valid reports whether t is one of the known input modes.
func (t ColumnType) Valid() bool {
	return t == TypeFree || t == TypeDropdown
}

// Label returns the on-screen name of the input mode.
func (t ColumnType) Label() string {
	switch t {
	case TypeDropdown:
		return "Dropdown"
	case TypeFree:
		return "Free text"
	}
	return string(t)
}

// CustomColumn is a user-authored output column.
type CustomColumn struct {
	Name    string     `json:"name"`
	Type    ColumnType `json:"type"`
	Options []string   `json:"options,omitempty"`
}

type customColumnJSON struct {
	Name    string     `json:"name"`
	Type    ColumnType `json:"type"`
	Options *[]string  `json:"options,omitempty"`
}

// MarshalJSON always emits options for dropdown columns, an empty array
// included, and never for free columns.
func (c CustomColumn) MarshalJSON() ([]byte, error) {
	out := customColumnJSON{Name: c.Name, Type: c.Type}
	if c.Type == TypeDropdown {
		opts := c.Options
		if opts == nil {
			opts = []string{}
		}
		out.Options = &opts
	}
	return json.Marshal(out)
}

// CleanOptions trims every option and drops the blank ones, keeping order.
func CleanOptions(raw []string) []string {
	cleaned := make([]string, 0, len(raw))
	for _, opt := range raw {
		opt = strings.TrimSpace(opt)
		if opt != "" {
			cleaned = append(cleaned, opt)
		}
	}
	return cleaned
}
