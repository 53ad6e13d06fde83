package templates

import "strings"

// Mode selects which render branch editable fields use.
type Mode string

const (
	ModeView Mode = "view"
	ModeEdit Mode = "edit"
)

// ParseMode reads the mode query value; anything but "edit" is view mode.
func ParseMode(raw string) Mode {
	if strings.EqualFold(strings.TrimSpace(raw), string(ModeEdit)) {
		return ModeEdit
	}
	return ModeView
}

// Editing reports whether inputs replace static labels.
func (m Mode) Editing() bool {
	return m == ModeEdit
}
