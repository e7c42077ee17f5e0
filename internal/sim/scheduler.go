package sim

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Task runs once per tick. Returning false cancels it.
type Task func(now time.Time, elapsed time.Duration) bool

type entry struct {
	id       uint64
	name     string
	task     Task
	last     time.Time
	canceled bool
}

// Handle cancels a scheduled task.
type Handle struct {
	s  *Scheduler
	id uint64
}

func (h *Handle) Cancel() {
	if h == nil || h.s == nil {
		return
	}
	h.s.cancel(h.id)
}

// Active reports whether the task is still scheduled.
func (h *Handle) Active() bool {
	if h == nil || h.s == nil {
		return false
	}
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	e, ok := h.s.tasks[h.id]
	return ok && !e.canceled
}

// Scheduler runs repeating tasks whenever the host signals a display refresh.
// Tasks run sequentially on the goroutine calling Tick.
type Scheduler struct {
	mu     sync.Mutex
	tasks  map[uint64]*entry
	nextID uint64
	ticks  uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[uint64]*entry)}
}

// Every registers task to run on each subsequent tick.
func (s *Scheduler) Every(name string, task Task) *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.tasks[s.nextID] = &entry{id: s.nextID, name: name, task: task}
	return &Handle{s: s, id: s.nextID}
}

func (s *Scheduler) cancel(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.tasks[id]; ok {
		e.canceled = true
		delete(s.tasks, id)
	}
}

// Tick runs every live task once in registration order.
// Tasks registered during a tick first run on the next one.
func (s *Scheduler) Tick(now time.Time) {
	s.mu.Lock()
	s.ticks++
	batch := make([]*entry, 0, len(s.tasks))
	for _, e := range s.tasks {
		batch = append(batch, e)
	}
	s.mu.Unlock()

	sort.Slice(batch, func(i, j int) bool { return batch[i].id < batch[j].id })

	for _, e := range batch {
		s.mu.Lock()
		canceled := e.canceled
		s.mu.Unlock()
		if canceled {
			continue
		}

		var elapsed time.Duration
		if !e.last.IsZero() {
			elapsed = now.Sub(e.last)
		}
		e.last = now

		if !e.task(now, elapsed) {
			s.cancel(e.id)
		}
	}
}

// Run drives Tick from a ticker until ctx is done.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			s.Tick(now)
		}
	}
}

func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Ticks returns how many times Tick has been called.
func (s *Scheduler) Ticks() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

// Names lists scheduled tasks in registration order.
func (s *Scheduler) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]uint64, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = s.tasks[id].name
	}
	return names
}
