// Package view turns a task collection into the ordered rows shown to the
// user. It knows nothing about the terminal.
package view

import (
	"fmt"
	"sort"
	"strings"

	"tasklist/internal/tasks"
)

type Filter string

const (
	All       Filter = "all"
	Completed Filter = "completed"
	Pending   Filter = "pending"
)

// Filters returns the filters in the order their controls are shown.
func Filters() []Filter {
	return []Filter{All, Completed, Pending}
}

func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case All, Completed, Pending:
		return f, nil
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

// Next cycles through Filters.
func (f Filter) Next() Filter {
	fs := Filters()
	for i, v := range fs {
		if v == f {
			return fs[(i+1)%len(fs)]
		}
	}
	return All
}

func (f Filter) Match(t tasks.Task) bool {
	switch f {
	case Completed:
		return t.Completed
	case Pending:
		return !t.Completed
	default:
		return true
	}
}

type Action int

const (
	ActionComplete Action = iota
	ActionEdit
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionComplete:
		return "Complete"
	case ActionEdit:
		return "Edit"
	case ActionDelete:
		return "Delete"
	}
	return "Unknown"
}

// Row is one displayed task. Completed rows are drawn struck through and dimmed.
type Row struct {
	ID        int64
	Text      string
	Completed bool
	Actions   []Action
}

// Render filters c and orders the result newest first. The result replaces
// whatever was displayed before.
func Render(c tasks.Collection, f Filter) []Row {
	visible := make([]tasks.Task, 0, len(c))
	for _, t := range c {
		if f.Match(t) {
			visible = append(visible, t)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].ID > visible[j].ID
	})

	rows := make([]Row, 0, len(visible))
	for _, t := range visible {
		rows = append(rows, Row{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
			Actions:   []Action{ActionComplete, ActionEdit, ActionDelete},
		})
	}
	return rows
}
