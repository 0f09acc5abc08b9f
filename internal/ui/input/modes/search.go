package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"steamgrip/internal/ui/input/types"
)

// SearchMode is the player-search prompt. Unlike the other text modes,
// submitting does not close the prompt: the search runs while the prompt
// stays open, and only esc leaves the mode.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() == "enter" {
		return []types.Action{
			types.SubmitTextAction{Text: m.Value(), Mode: types.ModeSearch},
		}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
