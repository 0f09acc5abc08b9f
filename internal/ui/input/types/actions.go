package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end", "left", "right"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode // Which mode was cancelled
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// List actions
type ToggleBucketAction struct {
	Bucket string
}

func (a ToggleBucketAction) Type() string { return "toggle_bucket" }

type ToggleGroupingAction struct{}

func (a ToggleGroupingAction) Type() string { return "toggle_grouping" }

type ClearFilterAction struct{}

func (a ClearFilterAction) Type() string { return "clear_filter" }

type RandomGameAction struct{}

func (a RandomGameAction) Type() string { return "random_game" }

// Game actions
type ToggleFavoriteAction struct{}

func (a ToggleFavoriteAction) Type() string { return "toggle_favorite" }

type OpenDetailAction struct{}

func (a OpenDetailAction) Type() string { return "open_detail" }

type OpenStoreAction struct{}

func (a OpenStoreAction) Type() string { return "open_store" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

// Sort actions
type SortByAction struct {
	Key string
}

func (a SortByAction) Type() string { return "sort_by" }

type UpdateSortIndexAction struct {
	Index int
}

func (a UpdateSortIndexAction) Type() string { return "update_sort_index" }

type ToggleSortDirectionAction struct{}

func (a ToggleSortDirectionAction) Type() string { return "toggle_sort_direction" }

// Misc actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
