package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered over the main content. The
// base content turns greyscale, except the line naming the popup target,
// and the rows covered by the popup are replaced outright.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	// Render the popup with its style without forcing width/height – keep it tight
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	// Base greyscale layer, but keep the target game line colored
	targetName := extractTitlePlain(popupContent)
	grayBase := desaturateKeeping(mainContent, targetName)

	baseLines := strings.Split(grayBase, "\n")
	for len(baseLines) < y+modalH {
		baseLines = append(baseLines, "")
	}

	pad := strings.Repeat(" ", x)
	for i, popupLine := range strings.Split(styledPopup, "\n") {
		baseLines[y+i] = pad + popupLine
	}

	return strings.Join(baseLines, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	plain := ansiRE.ReplaceAllString(s, "")
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(plain)
}

// extractTitlePlain returns the first line of popup content without ANSI (game name in the detail modal)
func extractTitlePlain(popup string) string {
	// first line before newline
	for i := 0; i < len(popup); i++ {
		if popup[i] == '\n' {
			return ansiRE.ReplaceAllString(popup[:i], "")
		}
	}
	return ansiRE.ReplaceAllString(popup, "")
}

// desaturateKeeping turns everything greyscale except lines containing keepSubstr (plain text match)
func desaturateKeeping(s, keepSubstr string) string {
	if keepSubstr == "" {
		return desaturateANSI(s)
	}
	lines := strings.Split(s, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		plain := ansiRE.ReplaceAllString(line, "")
		if strings.Contains(plain, keepSubstr) {
			// keep original colored line
			out[i] = line
		} else {
			out[i] = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(plain)
		}
	}
	return strings.Join(out, "\n")
}
