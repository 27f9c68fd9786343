package form

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"listfmt/internal/columns"
)

// LoadLayout reads a column layout saved in the request shape.
func LoadLayout(path string) (Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Request{}, fmt.Errorf("failed to read layout %s: %w", path, err)
	}

	var layout Request
	if err := json.Unmarshal(data, &layout); err != nil {
		return Request{}, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	return layout, nil
}

// ApplyLayout replays a layout through the same operations a user would
// perform, so every custom column passes the commit rules.
func ApplyLayout(s State, layout Request) (State, error) {
	var unknown []string
	for _, key := range layout.DynamicColumns {
		if !columns.IsCatalogKey(key) {
			unknown = append(unknown, key)
			continue
		}
		if !s.Selected(key) {
			s = s.Toggle(key)
		}
	}
	if len(unknown) > 0 {
		return s, fmt.Errorf("unknown dynamic columns: %s", strings.Join(unknown, ", "))
	}

	for i, col := range layout.CustomColumns {
		s = s.OpenDialog().
			SetDraftName(col.Name).
			SetDraftType(col.Type).
			SetDraftOptions(col.Options)

		var err error
		s, err = s.Commit()
		if err != nil {
			return s.CancelDialog(), fmt.Errorf("custom column %d: %w", i+1, err)
		}
	}
	return s, nil
}
