package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"steamgrip/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		// Enter toggles a bucket when on its header; otherwise opens the
		// detail popup for the game under the cursor
		if ctx.OnHeader() {
			return []types.Action{types.ToggleBucketAction{Bucket: ctx.CurrentBucket()}}, true
		}
		if ctx.CurrentAppID() != 0 {
			return []types.Action{types.OpenDetailAction{}}, true
		}
		return nil, false
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "s":
		// Player search prompt
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "/":
		// Filter the library
		if ctx.HasLibrary() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter}}, true
		}
		return nil, false

	case "o":
		// Sort options
		if ctx.HasLibrary() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeSort}}, true
		}
		return nil, false

	case "O":
		// Reverse the current sort
		if ctx.HasLibrary() {
			return []types.Action{types.ToggleSortDirectionAction{}}, true
		}
		return nil, false

	case "t":
		// Toggle playtime grouping
		if ctx.HasLibrary() {
			return []types.Action{types.ToggleGroupingAction{}}, true
		}
		return nil, false

	case "f":
		// Toggle favorite for the game under the cursor
		if ctx.CurrentAppID() != 0 {
			return []types.Action{types.ToggleFavoriteAction{}}, true
		}
		return nil, false

	case "b":
		// Open the store page in the browser
		if ctx.CurrentAppID() != 0 {
			return []types.Action{types.OpenStoreAction{}}, true
		}
		return nil, false

	case "p":
		// Open the library in the pager
		if ctx.HasLibrary() {
			return []types.Action{types.OpenPagerAction{}}, true
		}
		return nil, false

	case "r":
		// Jump to a random visible game
		if ctx.HasLibrary() {
			return []types.Action{types.RandomGameAction{}}, true
		}
		return nil, false

	case "?":
		// Toggle help
		return []types.Action{types.ToggleHelpAction{}}, true

	case "esc":
		// Clear an active filter, otherwise nothing
		if ctx.FilterQuery() != "" {
			return []types.Action{types.ClearFilterAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case "q":
		// Quit
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
