package model

// RunState is a step of the per-collection state machine.
type RunState int

// Run states, in pipeline order.
const (
	StateInit RunState = iota
	StatePathsValidated
	StateArchiveScanned
	StateHashed
	StateIndexed
	StateClean
	StateDuplicatesFound
	StateUnstaged
	StateSourceStaged
	StateDone
	StateAborted
)

func (s RunState) String() string {
	switch s {
	case StateInit:
		return "init"
	case StatePathsValidated:
		return "paths-validated"
	case StateArchiveScanned:
		return "archive-scanned"
	case StateHashed:
		return "hashed"
	case StateIndexed:
		return "indexed"
	case StateClean:
		return "clean"
	case StateDuplicatesFound:
		return "duplicates-found"
	case StateUnstaged:
		return "unstaged"
	case StateSourceStaged:
		return "source-staged"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	}

	return "unknown"
}

// CanTransition reports whether the state machine allows moving from s to next.
// Any non-terminal state may abort.
func (s RunState) CanTransition(next RunState) bool {
	if next == StateAborted {
		return !s.Terminal()
	}

	switch s {
	case StateInit:
		return next == StatePathsValidated
	case StatePathsValidated:
		return next == StateArchiveScanned
	case StateArchiveScanned:
		return next == StateHashed
	case StateHashed:
		return next == StateIndexed
	case StateIndexed:
		return next == StateClean || next == StateDuplicatesFound
	case StateClean:
		return next == StateSourceStaged
	case StateDuplicatesFound:
		// A dry run stops right after planning.
		return next == StateUnstaged || next == StateDone
	case StateUnstaged, StateSourceStaged:
		return next == StateDone
	case StateDone, StateAborted:
		return false
	}

	return false
}

// Terminal reports whether no further transition is possible.
func (s RunState) Terminal() bool {
	return s == StateDone || s == StateAborted
}
