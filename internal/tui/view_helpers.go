package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("f1: información │ ctrl+c: salir"))

	return b.String()
}

// fieldRow renders "label │ [input]" with the inline error under it.
func fieldRow(b *strings.Builder, label, input, fieldErr string) {
	b.WriteString(label)
	b.WriteString(" │ [")
	b.WriteString(input)
	b.WriteString("]\n")
	if fieldErr != "" {
		b.WriteString(strings.Repeat(" ", len([]rune(label))))
		b.WriteString("   ")
		b.WriteString(errorStyle.Render(fieldErr))
		b.WriteString("\n")
	}
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
