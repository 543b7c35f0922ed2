package output

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-envjson/internal/converter"
	"github.com/MKhiriev/go-envjson/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	keyStyle    = lipgloss.NewStyle().Bold(true)
	typeStyle   = lipgloss.NewStyle().Faint(true)
	emptyStyle  = lipgloss.NewStyle().Faint(true).Italic(true)
)

const (
	headerKey   = "KEY"
	headerType  = "TYPE"
	headerValue = "VALUE"
)

type tableRenderer struct {
	selector
}

// Render writes an aligned KEY │ TYPE │ VALUE listing.
func (r *tableRenderer) Render(w io.Writer, ns *models.Namespace) error {
	entries := r.entries(ns)
	if len(entries) == 0 {
		_, err := io.WriteString(w, emptyStyle.Render("no variables resolved")+"\n")
		return err
	}

	rows := make([][3]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, [3]string{e.Key, typeName(e.Value), singleLine(converter.Stringify(e.Value))})
	}

	keyWidth := lipgloss.Width(headerKey)
	typeWidth := lipgloss.Width(headerType)
	for _, row := range rows {
		keyWidth = max(keyWidth, lipgloss.Width(row[0]))
		typeWidth = max(typeWidth, lipgloss.Width(row[1]))
	}

	var b strings.Builder
	b.WriteString(cell(headerStyle, headerKey, keyWidth))
	b.WriteString(" │ ")
	b.WriteString(cell(headerStyle, headerType, typeWidth))
	b.WriteString(" │ ")
	b.WriteString(headerStyle.Render(headerValue))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", keyWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", typeWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", lipgloss.Width(headerValue)))
	b.WriteString("\n")

	for _, row := range rows {
		b.WriteString(cell(keyStyle, row[0], keyWidth))
		b.WriteString(" │ ")
		b.WriteString(cell(typeStyle, row[1], typeWidth))
		b.WriteString(" │ ")
		b.WriteString(row[2])
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// cell styles s and pads it to width visible columns.
func cell(style lipgloss.Style, s string, width int) string {
	rendered := style.Render(s)
	if pad := width - lipgloss.Width(rendered); pad > 0 {
		rendered += strings.Repeat(" ", pad)
	}
	return rendered
}

func typeName(v any) string {
	if _, ok := v.(time.Time); ok {
		return converter.TypeDate.String()
	}
	return converter.TypeOf(v)
}

func singleLine(s string) string {
	return strings.NewReplacer("\r", `\r`, "\n", `\n`).Replace(s)
}
