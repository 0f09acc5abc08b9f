package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"steamgrip/internal/domain"
	"steamgrip/internal/ui/input/modes"
	"steamgrip/internal/ui/logic"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	Rows             []logic.Row
	SelectedIndex    int
	ViewportOffset   int
	ViewportHeight   int
	Player           *domain.Player
	GameCount        int
	HasLibrary       bool
	Favorites        map[uint32]bool
	Collapsed        map[string]bool
	GroupByPlaytime  bool
	Searching        bool
	SearchPhase      string
	StatusMessage    string
	FilterQuery      string
	InputMode        string
	TextInput        string
	SortOptionIndex  int
	ShowHelp         bool
	HelpScrollOffset int
	ShowDetail       bool
	DetailGame       *domain.Game
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	gameRender   *GameRenderer
	bucketRender *BucketRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showPlaytime bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		gameRender:   NewGameRenderer(styles, showPlaytime),
		bucketRender: NewBucketRenderer(styles),
		popupRender:  NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	// Title with loading indicator
	logo := r.styles.Title.Render("steamgrip")

	// Build loading indicators
	loadingIndicators := []string{}

	if state.Searching {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		loadingIndicators = append(loadingIndicators, fmt.Sprintf("%s %s", spinner[frame], phaseLabel(state.SearchPhase)))
	}

	// Build the title line with right-aligned indicators
	var titleLine string
	if len(loadingIndicators) > 0 || state.FilterQuery != "" {
		logoWidth := lipgloss.Width(logo)

		// Build right side content
		rightContent := ""
		if len(loadingIndicators) > 0 {
			rightContent = r.styles.Dim.Render(strings.Join(loadingIndicators, " | "))
		}
		if state.FilterQuery != "" {
			filterText := r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.FilterQuery))
			if rightContent != "" {
				rightContent = fmt.Sprintf("%s  %s", rightContent, filterText)
			} else {
				rightContent = filterText
			}
		}

		// Calculate padding needed
		rightWidth := lipgloss.Width(rightContent)
		termWidth := state.Width
		if termWidth <= 0 {
			termWidth = 80 // Default terminal width
		}
		availableWidth := termWidth - 4 // Account for main container padding
		paddingWidth := availableWidth - logoWidth - rightWidth

		if paddingWidth > 0 {
			padding := strings.Repeat(" ", paddingWidth)
			titleLine = fmt.Sprintf("%s%s%s", logo, padding, rightContent)
		} else {
			// If not enough space, just show with minimal spacing
			titleLine = fmt.Sprintf("%s  %s", logo, rightContent)
		}
	} else {
		titleLine = logo
	}

	content.WriteString(titleLine)
	content.WriteString("\n")

	// Input prompt
	if state.InputMode != "" {
		switch state.InputMode {
		case "sort":
			content.WriteString(r.renderSortOptions(state))
		case "search":
			content.WriteString(r.styles.Prompt.Render("Find player: ") + state.TextInput)
		case "filter":
			content.WriteString(r.styles.Prompt.Render("Filter: ") + state.TextInput)
		}
		content.WriteString("\n")
		content.WriteString("\n")
	}

	// Player summary
	if state.Player != nil {
		playerLine := r.styles.Player.Render(state.Player.DisplayName()) +
			r.styles.Dim.Render(fmt.Sprintf(" · %d games", state.GameCount))
		content.WriteString(playerLine)
		content.WriteString("\n")
	}

	// Main content
	mainContent := ""
	switch {
	case !state.HasLibrary && state.Searching:
		mainContent = r.styles.Dim.Render("Looking up player...")
	case !state.HasLibrary:
		mainContent = r.styles.Dim.Render("No library loaded. Press s to find a player.")
	case state.GameCount == 0:
		mainContent = r.styles.Dim.Render("No games in this library (the profile may be private).")
	case len(state.Rows) == 0:
		mainContent = r.styles.Dim.Render("No games match the filter.")
	default:
		mainContent = r.renderGameList(state)
	}

	content.WriteString(mainContent)

	// Status line and help hint live at the bottom when no popups are visible
	bottom := ""
	if !state.ShowHelp && !state.ShowDetail {
		if state.StatusMessage != "" {
			bottom = r.renderStatusMessage(state.StatusMessage) + "\n"
		}
		bottom += r.styles.Help.Render("Press ? for help")
	}

	if bottom != "" {
		// Count current lines
		currentContent := content.String()
		currentLines := strings.Count(currentContent, "\n") + 1

		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22 // Default terminal height minus padding
		}

		bottomLines := strings.Count(bottom, "\n") + 1

		// Calculate padding needed
		paddingNeeded := availableLines - currentLines - bottomLines

		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}

		content.WriteString("\n")
		content.WriteString(bottom)
	}

	// Apply main container style
	mainStyle := r.styles.Main.MaxHeight(state.Height)
	finalContent := mainStyle.Render(content.String())

	// Overlay popups on top of main content
	if state.ShowDetail && state.DetailGame != nil {
		detailContent := r.renderDetailContent(state)
		return r.popupRender.RenderPopupOverlay(finalContent, detailContent, state.Height, state.Width, r.styles.InfoBox)
	}

	if state.ShowHelp {
		helpContent := r.renderHelpContent(state.Height, state.HelpScrollOffset)
		return r.popupRender.RenderPopupOverlay(finalContent, helpContent, state.Height, state.Width, r.styles.InfoBox)
	}

	return finalContent
}

// renderGameList renders the visible window of the game list
func (r *Renderer) renderGameList(state ViewState) string {
	var lines []string

	nameQuery := logic.NameQuery(state.FilterQuery)
	start, end, above, below := logic.Window(len(state.Rows), state.ViewportOffset, state.ViewportHeight)

	// Width available inside the main container
	listWidth := state.Width - 4
	if listWidth < 0 {
		listWidth = 0
	}

	indent := 0
	if state.GroupByPlaytime {
		indent = 1
	}

	if above {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}

	for i := start; i < end; i++ {
		row := state.Rows[i]
		isSelected := i == state.SelectedIndex

		switch row.Kind {
		case logic.RowHeader:
			lines = append(lines, r.bucketRender.RenderBucketHeader(
				row.Bucket, state.Collapsed[row.Bucket], isSelected, nameQuery, row.Count, listWidth))
		case logic.RowGame:
			lines = append(lines, r.gameRender.RenderGame(
				row.Game, isSelected, indent, state.Favorites[row.Game.AppID], nameQuery))
		}
	}

	if below {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", len(state.Rows)-end)))
	}

	return strings.Join(lines, "\n")
}

// renderStatusMessage styles the status line by its content
func (r *Renderer) renderStatusMessage(msg string) string {
	switch {
	case strings.HasPrefix(msg, "Error"):
		return r.styles.StatusError.Render(msg)
	case strings.HasPrefix(msg, "Loaded"), strings.HasPrefix(msg, "Found"):
		return r.styles.StatusSuccess.Render(msg)
	default:
		return r.styles.StatusLoading.Render(msg)
	}
}

// renderSortOptions renders the sort mode selection interface
func (r *Renderer) renderSortOptions(state ViewState) string {
	// Show only the current sort option
	if state.SortOptionIndex >= 0 && state.SortOptionIndex < len(modes.SortOptions) {
		option := modes.SortOptions[state.SortOptionIndex]
		sortLine := fmt.Sprintf("Sort by: %s - %s", option.Name, option.Description)
		helpLine := r.styles.Dim.Render("↑/↓ or j/k to change • Enter to accept • Esc to cancel")
		return sortLine + "\n" + helpLine
	}
	return ""
}

// phaseLabel names the search phase shown next to the spinner
func phaseLabel(phase string) string {
	switch phase {
	case "resolve":
		return "Resolving player"
	case "validate":
		return "Checking profile"
	case "library":
		return "Fetching library"
	default:
		return "Searching"
	}
}

// renderDetailContent renders the game detail popup
func (r *Renderer) renderDetailContent(state ViewState) string {
	game := *state.DetailGame

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	var detail strings.Builder
	detail.WriteString(r.styles.Player.Render(game.Name))
	detail.WriteString("\n")
	if state.Favorites[game.AppID] {
		detail.WriteString(r.styles.Favorite.Render("★ favorite"))
		detail.WriteString("\n")
	}
	detail.WriteString("\n")

	field := func(label, value string) {
		detail.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(fmt.Sprintf("%-14s", label)), valueStyle.Render(value)))
	}

	field("App ID", fmt.Sprintf("%d", game.AppID))
	if game.Played() {
		field("Playtime", FormatHours(game.Hours()))
	} else {
		field("Playtime", "unplayed")
	}
	if game.PlaytimeRecent > 0 {
		field("Past two weeks", FormatHours(float64(game.PlaytimeRecent)/60.0))
	}
	if !game.LastPlayed().IsZero() {
		field("Last played", game.LastPlayed().Format("2006-01-02"))
	}
	field("Store", game.StoreURL())

	detail.WriteString("\n")
	detail.WriteString(r.styles.Help.Render("f favorite • b store page • esc close"))

	return detail.String()
}

// renderHelpContent renders the help information
func (r *Renderer) renderHelpContent(height int, scrollOffset int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	// Title
	help.WriteString(titleStyle.Render("Steamgrip Help"))
	help.WriteString("\n")

	// Navigation section
	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Navigate up/down")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("PgUp/PgDn"), descStyle.Render("Page up/down")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("g/G"), descStyle.Render("Go to top/bottom")))

	// Search section
	help.WriteString(sectionStyle.Render("Player Search"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("s"), descStyle.Render("Find a player's library")))
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  Accepts a vanity name, SteamID64 or profile URL"))
	help.WriteString("\n")

	// Library section
	help.WriteString(sectionStyle.Render("Library"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Enter"), descStyle.Render("Game details / toggle bucket")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("f"), descStyle.Render("Toggle favorite")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("b"), descStyle.Render("Open store page in browser")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("p"), descStyle.Render("View library in pager")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("r"), descStyle.Render("Jump to a random game")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("t"), descStyle.Render("Group by playtime")))

	// Filter & sort section
	help.WriteString(sectionStyle.Render("Filter & Sort"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("/"), descStyle.Render("Filter games")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("o"), descStyle.Render("Sort options")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("O"), descStyle.Render("Reverse sort direction")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("Esc"), descStyle.Render("Clear filter")))
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  Filter examples: fav:, unplayed:, fav:portal"))
	help.WriteString("\n")

	// Other section
	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("?"), descStyle.Render("Toggle this help")))
	help.WriteString(fmt.Sprintf("  %s          %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	// Split into lines for scrolling
	content := help.String()
	lines := strings.Split(content, "\n")
	totalLines := len(lines)

	// Calculate visible window (account for popup border and padding)
	visibleHeight := height - 4
	if visibleHeight < 5 {
		visibleHeight = 5
	}

	// Apply scrolling
	if totalLines > visibleHeight {
		maxOffset := totalLines - visibleHeight
		if scrollOffset > maxOffset {
			scrollOffset = maxOffset
		}
		if scrollOffset < 0 {
			scrollOffset = 0
		}

		endLine := scrollOffset + visibleHeight
		if endLine > totalLines {
			endLine = totalLines
		}
		lines = lines[scrollOffset:endLine]

		// Add scroll indicators
		if scrollOffset > 0 {
			lines[0] = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("↑ (more above)")
		}
		if endLine < totalLines {
			lines[len(lines)-1] = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("↓ (more below)")
		}
	}

	return strings.Join(lines, "\n")
}
