package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"steamgrip/internal/domain"
)

// GameRenderer handles rendering of game rows
type GameRenderer struct {
	styles       *Styles
	showPlaytime bool
}

// NewGameRenderer creates a new game renderer
func NewGameRenderer(styles *Styles, showPlaytime bool) *GameRenderer {
	return &GameRenderer{
		styles:       styles,
		showPlaytime: showPlaytime,
	}
}

// RenderGame renders a single game row
func (r *GameRenderer) RenderGame(game domain.Game, isSelected bool, indent int,
	isFavorite bool, nameQuery string) string {

	// Background color for selection
	bgColor := ""
	if isSelected {
		bgColor = "238"
	}

	var parts []string

	// Indentation
	if indent > 0 {
		parts = append(parts, strings.Repeat("  ", indent))
	}

	// Favorite marker
	if isFavorite {
		starStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
		if isSelected {
			starStyle = starStyle.Background(lipgloss.Color(bgColor))
		}
		parts = append(parts, starStyle.Render("★"))
		parts = append(parts, " ")
	}

	// Game name (with filter highlighting if applicable)
	gameName := game.Name
	nameStyle := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))
	if nameQuery != "" && strings.Contains(strings.ToLower(gameName), strings.ToLower(nameQuery)) {
		gameName = r.highlightMatch(gameName, nameQuery,
			nameStyle.Foreground(lipgloss.Color("226")), nameStyle)
		parts = append(parts, gameName)
	} else {
		parts = append(parts, nameStyle.Render(gameName))
	}

	// Playtime figure
	if r.showPlaytime {
		var timeStyle lipgloss.Style
		var timeText string
		if game.Played() {
			timeText = fmt.Sprintf(" (%s)", FormatHours(game.Hours()))
			timeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(PlaytimeColor(game.Hours())))
		} else {
			timeText = " (unplayed)"
			timeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		}
		if isSelected {
			timeStyle = timeStyle.Background(lipgloss.Color(bgColor))
		}
		parts = append(parts, timeStyle.Render(timeText))
	}

	return strings.Join(parts, "")
}

// FormatHours formats a playtime figure for display
func FormatHours(hours float64) string {
	if hours < 1 {
		return fmt.Sprintf("%d min", int(hours*60))
	}
	return fmt.Sprintf("%.1f h", hours)
}

// highlightMatch highlights matching text within a string
func (r *GameRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	if index == -1 {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}
