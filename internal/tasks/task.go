// Package tasks holds the task model and the operations that mutate a
// persisted task collection.
package tasks

// Task is a single to-do item. ID is the creation time in milliseconds since
// the Unix epoch and doubles as the default sort key.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Collection is the full task list in creation order.
type Collection []Task

// Index returns the position of the first task with id, or -1.
func (c Collection) Index(id int64) int {
	for i, t := range c {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (c Collection) maxID() int64 {
	var top int64
	for _, t := range c {
		if t.ID > top {
			top = t.ID
		}
	}
	return top
}

type EventKind int

const (
	None EventKind = iota
	Added
	Toggled
	Edited
	Deleted
)

// Event reports what an operation changed. Kind None means the operation was
// a no-op and nothing was written.
type Event struct {
	Kind EventKind
	Task Task
}

func (e Event) Changed() bool {
	return e.Kind != None
}

// Notice is the confirmation text shown after a successful mutation.
func (e Event) Notice() string {
	switch e.Kind {
	case Added:
		return "Task Added!"
	case Toggled:
		return "Task Updated!"
	case Edited:
		return "Task Edited!"
	case Deleted:
		return "Task Deleted!"
	default:
		return ""
	}
}
