package review

// Action is a command typed at the per-branch prompt.
type Action int

const (
	// ActionHelp is also what any unknown key maps to.
	ActionHelp Action = iota
	ActionShow
	ActionKeep
	ActionDelete
	ActionQuit
)

// ParseAction maps a keystroke to an Action. Unknown keys map to ActionHelp.
func ParseAction(c byte) Action {
	switch c {
	case 's':
		return ActionShow
	case 'k':
		return ActionKeep
	case 'd':
		return ActionDelete
	case 'q':
		return ActionQuit
	default:
		return ActionHelp
	}
}

// String returns the lower-case name of the action.
func (a Action) String() string {
	switch a {
	case ActionShow:
		return "show"
	case ActionKeep:
		return "keep"
	case ActionDelete:
		return "delete"
	case ActionQuit:
		return "quit"
	default:
		return "help"
	}
}

// Answer is a reply to the delete confirmation.
type Answer int

const (
	AnswerInvalid Answer = iota
	AnswerAccept
	AnswerRefuse
)

// ParseAnswer maps a keystroke to an Answer. Anything but y or n is invalid.
func ParseAnswer(c byte) Answer {
	switch c {
	case 'y':
		return AnswerAccept
	case 'n':
		return AnswerRefuse
	default:
		return AnswerInvalid
	}
}
