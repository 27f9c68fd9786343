// Package form holds the column configuration state and the operations the
// user performs on it. Every operation takes a State by value and returns the
// next State; nothing here touches the network or the filesystem.
package form

import (
	"errors"
	"slices"
	"strings"

	"listfmt/internal/columns"
)

var (
	ErrNameRequired = errors.New("column name is required")
	ErrTypeRequired = errors.New("column type is required")
)

// Draft is the custom column under edit in the add-column dialog.
type Draft struct {
	Name    string             `json:"name"`
	Type    columns.ColumnType `json:"type"`
	Options []string           `json:"options"`
}

func emptyDraft() Draft {
	return Draft{Type: columns.TypeFree, Options: []string{}}
}

// OptionsText returns the raw comma separated options as typed.
func (d Draft) OptionsText() string {
	return strings.Join(d.Options, ",")
}

// State is everything the form knows.
type State struct {
	DynamicColumns []string               `json:"dynamic_columns"`
	CustomColumns  []columns.CustomColumn `json:"custom_columns"`
	Draft          Draft                  `json:"draft"`
	DialogOpen     bool                   `json:"dialog_open"`
	Busy           bool                   `json:"busy"`
}

func New() State {
	return State{
		DynamicColumns: []string{},
		CustomColumns:  []columns.CustomColumn{},
		Draft:          emptyDraft(),
	}
}

// Selected reports whether the catalog key is currently selected.
func (s State) Selected(key string) bool {
	return slices.Contains(s.DynamicColumns, key)
}

// Toggle adds key to the selection, or removes it if already there.
// Keys outside the catalog are ignored.
func (s State) Toggle(key string) State {
	if !columns.IsCatalogKey(key) {
		return s
	}
	if s.Selected(key) {
		s.DynamicColumns = slices.DeleteFunc(slices.Clone(s.DynamicColumns), func(k string) bool {
			return k == key
		})
		return s
	}
	s.DynamicColumns = append(slices.Clone(s.DynamicColumns), key)
	return s
}

func (s State) OpenDialog() State {
	s.DialogOpen = true
	return s
}

// CancelDialog closes the dialog and throws the draft away.
func (s State) CancelDialog() State {
	s.DialogOpen = false
	s.Draft = emptyDraft()
	return s
}

func (s State) SetDraftName(name string) State {
	s.Draft.Name = name
	return s
}

// SetDraftType changes the input mode; drafted options are kept.
func (s State) SetDraftType(t columns.ColumnType) State {
	s.Draft.Type = t
	return s
}

// SetDraftOptions replaces the drafted options with an already split list.
func (s State) SetDraftOptions(options []string) State {
	s.Draft.Options = slices.Clone(options)
	return s
}

// SetDraftOptionsText splits raw on commas without trimming.
func (s State) SetDraftOptionsText(raw string) State {
	s.Draft.Options = strings.Split(raw, ",")
	return s
}

// Commit validates the draft and appends it to the custom columns. On error
// the returned state is s unchanged and the dialog stays open.
func (s State) Commit() (State, error) {
	if s.Draft.Name == "" {
		return s, ErrNameRequired
	}
	if !s.Draft.Type.Valid() {
		return s, ErrTypeRequired
	}

	col := columns.CustomColumn{
		Name: s.Draft.Name,
		Type: s.Draft.Type,
	}
	if col.Type == columns.TypeDropdown {
		col.Options = columns.CleanOptions(s.Draft.Options)
	}

	s.CustomColumns = append(slices.Clone(s.CustomColumns), col)
	s.Draft = emptyDraft()
	s.DialogOpen = false
	return s, nil
}

// Remove drops the custom column at index i. Out of range is a no-op.
func (s State) Remove(i int) State {
	if i < 0 || i >= len(s.CustomColumns) {
		return s
	}
	s.CustomColumns = slices.Delete(slices.Clone(s.CustomColumns), i, i+1)
	return s
}
