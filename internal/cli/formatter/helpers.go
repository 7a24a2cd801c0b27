package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
// In plain mode the title is printed above the content instead.
func RenderBox(title string, content string) string {
	if plain {
		if title == "" {
			return content
		}
		return strings.ToUpper(title) + "\n\n" + content
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		inner := StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
		return boxStyle.Render(inner)
	}
	return boxStyle.Render(content)
}

// TruncID shortens a history ID to its first 8 characters.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// CM formats a millimetre length in centimetres.
func CM(mm float64) string {
	return fmt.Sprintf("%.1f", mm/10)
}

// SizeCM formats a width x height pair in centimetres.
func SizeCM(w, h float64) string {
	return fmt.Sprintf("%s x %s cm", CM(w), CM(h))
}

// Money formats a euro amount.
func Money(eur float64) string {
	return fmt.Sprintf("%.2f EUR", eur)
}

// Percent formats a percentage with one decimal.
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Timestamp formats a history timestamp in local time.
func Timestamp(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// kvLines renders aligned "label  value" lines.
func kvLines(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		if w := lipgloss.Width(p[0]); w > width {
			width = w
		}
	}
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(Dim(p[0]))
		b.WriteString(strings.Repeat(" ", width-lipgloss.Width(p[0])+colGap))
		b.WriteString(p[1])
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
