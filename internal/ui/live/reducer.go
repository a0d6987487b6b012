package live

// Action is a user command applied to the view state.
type Action string

const (
	ActionTogglePublished Action = "toggle_published"
	ActionToggleEmpty     Action = "toggle_empty"
	ActionReset           Action = "reset"
)

// Reduce applies an action to the state. The question bank itself is never modified.
func Reduce(state State, action Action) State {
	switch action {
	case ActionTogglePublished:
		state.PublishedOnly = !state.PublishedOnly
	case ActionToggleEmpty:
		state.HideEmpty = !state.HideEmpty
	case ActionReset:
		state.PublishedOnly = false
		state.HideEmpty = false
	}
	return state
}

// actionForKey maps key presses to actions.
func actionForKey(key string) (Action, bool) {
	switch key {
	case "p":
		return ActionTogglePublished, true
	case "e":
		return ActionToggleEmpty, true
	case "r":
		return ActionReset, true
	default:
		return "", false
	}
}
