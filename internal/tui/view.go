package tui

import (
	"fmt"
	"strings"

	"listfmt/internal/columns"
	"listfmt/internal/form"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	switch m.state {
	case stateDialog:
		return m.viewDialog()
	case stateNotice:
		return m.viewNotice()
	}
	return m.viewForm()
}

func (m model) viewForm() string {
	var b strings.Builder

	b.WriteString(m.titleStyle.Width(m.width).Render("Customer List Format Generator"))
	b.WriteString("\n\n")

	// Required columns
	b.WriteString(m.sectionStyle.Render("Required columns"))
	b.WriteString("\n")
	b.WriteString(m.mutedStyle.Render("Always included."))
	b.WriteString("\n")
	var required []string
	for _, label := range columns.RequiredColumns {
		required = append(required, m.requiredStyle.Render(label))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, required...))
	b.WriteString("\n\n")

	// Optional columns
	b.WriteString(m.sectionStyle.Render("Optional columns"))
	b.WriteString("\n")
	for i, c := range columns.DynamicCatalog {
		check := "[ ]"
		if m.form.Selected(c.Key) {
			check = "[x]"
		}
		b.WriteString(m.itemStyle(i).Render(fmt.Sprintf("%s %s", check, c.Label)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Custom columns
	b.WriteString(m.sectionStyle.Render("Custom columns"))
	b.WriteString("\n")
	if len(m.form.CustomColumns) == 0 {
		b.WriteString(m.mutedStyle.Render("  No custom columns yet. Press a to add one."))
		b.WriteString("\n")
	}
	for i, c := range m.form.CustomColumns {
		line := m.itemStyle(len(columns.DynamicCatalog)+i).Render(c.Name) + " " + m.badgeStyle.Render(c.Type.Label())
		if c.Type == columns.TypeDropdown && len(c.Options) > 0 {
			line += " " + m.mutedStyle.Render("options: "+strings.Join(c.Options, ", "))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Generate button
	if m.form.Busy {
		b.WriteString(m.busyStyle.Render(m.spinner.View() + " Generating..."))
	} else {
		b.WriteString(m.buttonStyle.Render("Generate Excel format (g)"))
	}
	b.WriteString("\n\n")

	if m.showHelp {
		b.WriteString(m.help.View(m.keys))
	}

	return b.String()
}

func (m model) itemStyle(idx int) lipgloss.Style {
	if idx == m.cursor {
		return m.selectedStyle
	}
	return m.normalStyle
}

func (m model) viewDialog() string {
	var b strings.Builder

	b.WriteString(m.titleStyle.Render("Add custom column"))
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel(fieldName, "Column name"))
	b.WriteString("\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel(fieldType, "Input type"))
	b.WriteString("\n")
	for _, t := range []columns.ColumnType{columns.TypeFree, columns.TypeDropdown} {
		mark := "( )"
		if m.form.Draft.Type == t {
			mark = "(•)"
		}
		b.WriteString(m.normalStyle.Render(mark + " " + t.Label()))
	}
	b.WriteString("\n")

	if m.form.Draft.Type == columns.TypeDropdown {
		b.WriteString("\n")
		b.WriteString(m.fieldLabel(fieldOptions, "Dropdown options"))
		b.WriteString("\n")
		b.WriteString(m.optsInput.View())
		b.WriteString("\n")
		b.WriteString(m.mutedStyle.Render("Separate options with commas (,)."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.mutedStyle.Render("tab: next field | ←→: input type | enter: add | esc: cancel"))

	return m.dialogStyle.Render(b.String())
}

func (m model) fieldLabel(f field, label string) string {
	if m.focus == f {
		return m.selectedStyle.Render(label)
	}
	return m.normalStyle.Render(label)
}

func (m model) viewNotice() string {
	style := m.infoStyle
	if m.notice.Kind == form.NoticeError {
		style = m.errorStyle
	}

	var b strings.Builder
	b.WriteString(style.Render(m.notice.Text))
	b.WriteString("\n\n")
	b.WriteString(m.mutedStyle.Render("Press enter to continue"))

	return m.dialogStyle.Render(b.String())
}
