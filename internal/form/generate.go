package form

import (
	"fmt"
	"slices"

	"listfmt/internal/columns"
)

// Request is the body sent to the generation service.
type Request struct {
	DynamicColumns []string               `json:"dynamic_columns"`
	CustomColumns  []columns.CustomColumn `json:"custom_columns"`
}

// Request snapshots the transmitted part of the state. Required columns are
// implied by the service and never sent.
func (s State) Request() Request {
	req := Request{
		DynamicColumns: slices.Clone(s.DynamicColumns),
		CustomColumns:  slices.Clone(s.CustomColumns),
	}
	if req.DynamicColumns == nil {
		req.DynamicColumns = []string{}
	}
	if req.CustomColumns == nil {
		req.CustomColumns = []columns.CustomColumn{}
	}
	return req
}

// BeginGenerate enters the busy state and returns the request to send.
// It reports false, leaving s untouched, when a request is already running.
func (s State) BeginGenerate() (State, Request, bool) {
	if s.Busy {
		return s, Request{}, false
	}
	s.Busy = true
	return s, s.Request(), true
}

// FinishGenerate leaves the busy state and picks the notice for the outcome.
// Selections and custom columns are never touched.
func (s State) FinishGenerate(savedPath string, err error) (State, Notice) {
	s.Busy = false
	if err != nil {
		return s, GenerateFailedNotice
	}
	return s, Notice{
		Kind: NoticeInfo,
		Text: fmt.Sprintf("Saved %s", savedPath),
	}
}
