package tasks

import (
	"strings"
	"time"

	"go.uber.org/zap"
)

// Service applies operations to the persisted collection. Each operation
// loads the full snapshot, transforms it, and saves it back.
type Service struct {
	snap *Snapshot
	now  func() time.Time
	log  *zap.Logger
}

type Option func(*Service)

// WithClock replaces time.Now as the source of new task ids.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func NewService(snap *Snapshot, opts ...Option) *Service {
	s := &Service{
		snap: snap,
		now:  time.Now,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) List() (Collection, error) {
	return s.snap.Load()
}

func (s *Service) Find(id int64) (Task, bool, error) {
	c, err := s.snap.Load()
	if err != nil {
		return Task{}, false, err
	}
	i := c.Index(id)
	if i < 0 {
		return Task{}, false, nil
	}
	return c[i], true, nil
}

func (s *Service) Add(text string) (Event, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Event{}, nil
	}
	c, err := s.snap.Load()
	if err != nil {
		return Event{}, err
	}
	t := Task{ID: s.nextID(c), Text: text}
	c = append(c, t)
	if err := s.snap.Save(c); err != nil {
		return Event{}, err
	}
	s.log.Debug("task added", zap.Int64("id", t.ID), zap.Int("count", len(c)))
	return Event{Kind: Added, Task: t}, nil
}

func (s *Service) ToggleComplete(id int64) (Event, error) {
	c, err := s.snap.Load()
	if err != nil {
		return Event{}, err
	}
	i := c.Index(id)
	if i < 0 {
		return Event{}, nil
	}
	c[i].Completed = !c[i].Completed
	if err := s.snap.Save(c); err != nil {
		return Event{}, err
	}
	s.log.Debug("task toggled", zap.Int64("id", id), zap.Bool("completed", c[i].Completed))
	return Event{Kind: Toggled, Task: c[i]}, nil
}

// Edit replaces the text of task id. An unknown id or a blank replacement
// leaves the collection untouched.
func (s *Service) Edit(id int64, newText string) (Event, error) {
	newText = strings.TrimSpace(newText)
	if newText == "" {
		return Event{}, nil
	}
	c, err := s.snap.Load()
	if err != nil {
		return Event{}, err
	}
	i := c.Index(id)
	if i < 0 {
		return Event{}, nil
	}
	c[i].Text = newText
	if err := s.snap.Save(c); err != nil {
		return Event{}, err
	}
	s.log.Debug("task edited", zap.Int64("id", id))
	return Event{Kind: Edited, Task: c[i]}, nil
}

// Delete drops every task with id and saves, whether or not one matched.
func (s *Service) Delete(id int64) (Event, error) {
	c, err := s.snap.Load()
	if err != nil {
		return Event{}, err
	}
	var removed Task
	kept := c[:0]
	for _, t := range c {
		if t.ID == id {
			removed = t
			continue
		}
		kept = append(kept, t)
	}
	if err := s.snap.Save(kept); err != nil {
		return Event{}, err
	}
	s.log.Debug("task deleted", zap.Int64("id", id), zap.Int("count", len(kept)))
	return Event{Kind: Deleted, Task: removed}, nil
}

// nextID is the current time in milliseconds, bumped past the largest
// existing id so ids stay unique within the collection.
func (s *Service) nextID(c Collection) int64 {
	id := s.now().UnixMilli()
	if top := c.maxID(); id <= top {
		id = top + 1
	}
	return id
}
