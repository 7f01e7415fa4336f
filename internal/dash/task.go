package dash

import "github.com/prdeck/prdeck/models"

// TaskKind enumerates the blocking operations the dashboard can run.
// At most one task is in flight at a time; the controller queues the
// next one and the event loop executes it off the UI goroutine.
type TaskKind int

const (
	TaskReloadAll TaskKind = iota
	TaskReloadRepo
	TaskReloadContributions
	TaskMerge
	TaskApprove
	TaskLoadPreview
)

// Task describes one queued operation. Owner/Name scope repository
// reloads; PR carries the record for merge, approve and preview loads;
// Mode selects which preview pane to fill.
type Task struct {
	Kind  TaskKind
	Owner string
	Name  string
	PR    models.PullRequest
	Mode  PreviewMode
	Login string
}
