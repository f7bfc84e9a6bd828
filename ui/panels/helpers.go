package panels

import (
	"fmt"
	"math"
	"strings"

	"snapframe/internal/annotation"
)

func formatPixels(v float64) string {
	return fmt.Sprintf("%d px", int(math.Round(v)))
}

// describeElement is the one-line label used in the elements list.
func describeElement(e annotation.Element) string {
	p, s := e.Origin(), e.Extent()
	switch el := e.(type) {
	case annotation.Text:
		content := el.Content
		if len([]rune(content)) > 24 {
			content = string([]rune(content)[:24]) + "…"
		}
		if el.Editing {
			return fmt.Sprintf("Text %q (editing) at %.0f,%.0f", content, p.X, p.Y)
		}
		return fmt.Sprintf("Text %q at %.0f,%.0f", content, p.X, p.Y)
	default:
		return fmt.Sprintf("%s %.0f×%.0f at %.0f,%.0f", titleCase(e.Kind().String()), s.Width, s.Height, p.X, p.Y)
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
