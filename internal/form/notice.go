package form

import "errors"

type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeError
)

// Notice is a blocking message the user has to dismiss.
type Notice struct {
	Kind NoticeKind
	Text string
}

var (
	NameRequiredNotice = Notice{
		Kind: NoticeError,
		Text: "Please enter a column name.",
	}
	TypeRequiredNotice = Notice{
		Kind: NoticeError,
		Text: "Please choose an input type.",
	}
	GenerateFailedNotice = Notice{
		Kind: NoticeError,
		Text: "Failed to generate the Excel file. Check that the API server is running.",
	}
)

// CommitNotice maps a Commit error to the notice shown for it.
func CommitNotice(err error) Notice {
	if errors.Is(err, ErrTypeRequired) {
		return TypeRequiredNotice
	}
	return NameRequiredNotice
}
