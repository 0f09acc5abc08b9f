package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"steamgrip/internal/ui/input/types"
)

// SortOptions available for sorting
var SortOptions = []struct {
	Key         string
	Name        string
	Description string
}{
	{"name", "Name", "Sort by game name"},
	{"playtime", "Playtime", "Sort by total playtime"},
	{"appid", "App ID", "Sort by Steam app id"},
	{"lastplayed", "Last played", "Sort by last played time"},
}

type SortSelectMode struct {
	sortIndex     int
	originalIndex int // Remember the original sort when entering
}

func NewSortSelectMode() *SortSelectMode {
	return &SortSelectMode{}
}

func (m *SortSelectMode) Name() string {
	return "sort"
}

func (m *SortSelectMode) Enter(ctx types.Context) []types.Action {
	// Start with the current sort option
	m.sortIndex = 0
	m.originalIndex = 0
	for i, option := range SortOptions {
		if option.Key == ctx.SortKey() {
			m.sortIndex = i
			m.originalIndex = i
			break
		}
	}
	return []types.Action{types.UpdateSortIndexAction{Index: m.sortIndex}}
}

func (m *SortSelectMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

// HandleKey processes key messages for sort selection. Moving through the
// options applies the sort immediately; accepting the option that was
// already active reverses the direction instead.
func (m *SortSelectMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		// Cancel and restore the original sort
		return []types.Action{
			types.SortByAction{Key: SortOptions[m.originalIndex].Key},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "enter":
		if m.sortIndex == m.originalIndex {
			return []types.Action{
				types.ToggleSortDirectionAction{},
				types.ChangeModeAction{Mode: types.ModeNormal},
			}, true
		}
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "down", "j":
		m.sortIndex++
		if m.sortIndex >= len(SortOptions) {
			m.sortIndex = 0
		}
		return []types.Action{
			types.UpdateSortIndexAction{Index: m.sortIndex},
			types.SortByAction{Key: SortOptions[m.sortIndex].Key},
		}, true

	case "up", "k":
		m.sortIndex--
		if m.sortIndex < 0 {
			m.sortIndex = len(SortOptions) - 1
		}
		return []types.Action{
			types.UpdateSortIndexAction{Index: m.sortIndex},
			types.SortByAction{Key: SortOptions[m.sortIndex].Key},
		}, true
	}

	return nil, false
}
