package model

// ActionState tracks a duplicate file through removal.
type ActionState int

const (
	// Planned marks a file chosen for removal that has not been handled yet.
	Planned ActionState = iota
	// Reported means the removal was only described (dry-run).
	Reported
	// Removed means the file was deleted and no link was requested.
	Removed
	// Linked means the file was deleted and replaced by a symlink to the kept file.
	Linked
	// RemovedLinkFailed means the file was deleted but the symlink could not be created.
	RemovedLinkFailed
	// RemovalFailed means the file could not be deleted and is still in place.
	RemovalFailed
)

func (s ActionState) String() string {
	switch s {
	case Planned:
		return "planned"
	case Reported:
		return "reported"
	case Removed:
		return "removed"
	case Linked:
		return "linked"
	case RemovedLinkFailed:
		return "removed, link failed"
	case RemovalFailed:
		return "removal failed"
	default:
		return "unknown"
	}
}

// Action describes what happened (or would happen) to one duplicate file.
type Action struct {
	Path       Path
	Keep       Path
	LinkTarget Path // Keep relative to the parent directory of Path
	Symlink    bool
	State      ActionState
	Err        error
}

// RemovalSummary counts actions by terminal state.
type RemovalSummary struct {
	DryRun            bool
	Sets              int
	Reported          int
	Removed           int
	Linked            int
	RemovedLinkFailed int
	RemovalFailed     int
}

// Add records the terminal state of an action.
func (s *RemovalSummary) Add(action Action) {
	switch action.State {
	case Reported:
		s.Reported++
	case Removed:
		s.Removed++
	case Linked:
		s.Linked++
	case RemovedLinkFailed:
		s.RemovedLinkFailed++
	case RemovalFailed:
		s.RemovalFailed++
	case Planned:
	}
}

// Deleted returns how many files no longer exist at their original path as regular files.
func (s RemovalSummary) Deleted() int {
	return s.Removed + s.Linked + s.RemovedLinkFailed
}
