package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	ClearTables Phase = iota
	CreateAuthors
	CreateMagazines
	CreateArticles
	CreateRandomArticles
)

func (p Phase) String() string {
	switch p {
	case ClearTables:
		return "clear_tables"
	case CreateAuthors:
		return "create_authors"
	case CreateMagazines:
		return "create_magazines"
	case CreateArticles:
		return "create_articles"
	case CreateRandomArticles:
		return "create_random_articles"
	default:
		return ""
	}
}

func clearTablesUpdate() ProgressUpdate {
	return ProgressUpdate{Phase: ClearTables, Step: 1, Total: 1, Message: "Clearing existing data..."}
}

func createdUpdate(phase Phase, step, total int, what string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   phase,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Created %s (%d/%d)", what, step, total),
	}
}

// sendProgress sends a progress update through the channel without blocking.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}
