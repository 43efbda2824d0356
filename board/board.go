// Package board holds the in-memory task board: the single owner of task
// identity and ordering across the four quadrants.
package board

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"quadrant-board/models"
)

// Storage loads and saves the whole collection.
type Storage interface {
	Load() (models.Collection, error)
	Save(c models.Collection) error
}

// Handler receives a snapshot of the board after every applied change.
// Handlers run synchronously and must not call mutating Board methods.
type Handler func(c models.Collection)

type handlerEntry struct {
	id      int
	handler Handler
}

// Board is the task store. Every applied mutation is saved in full and then
// announced to subscribers, in mutation order.
type Board struct {
	mu      sync.Mutex
	tasks   models.Collection
	storage Storage
	ids     *idGenerator

	notifyMu sync.Mutex
	subMu    sync.Mutex
	handlers []handlerEntry
	nextSub  int
}

// New hydrates a board from storage. It fails only when storage cannot be
// read, so that a board that exists is never overwritten by the demo tasks.
func New(storage Storage) (*Board, error) {
	return newBoard(storage, time.Now)
}

func newBoard(storage Storage, now func() time.Time) (*Board, error) {
	loaded, err := storage.Load()
	if err != nil {
		return nil, fmt.Errorf("load board: %w", err)
	}
	tasks := loaded.Clone()
	return &Board{
		tasks:   tasks,
		storage: storage,
		ids:     newIDGenerator(now, tasks.MaxID()),
	}, nil
}

// Snapshot returns a copy of the current collection.
func (b *Board) Snapshot() models.Collection {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tasks.Clone()
}

// Stats summarizes the current collection.
func (b *Board) Stats() models.Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return models.ComputeStats(b.tasks)
}

// Add appends a new open task to q. Blank text or an unknown quadrant is ignored.
func (b *Board) Add(q models.Quadrant, text string) (models.Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" || !q.Valid() {
		return models.Task{}, false
	}

	b.mu.Lock()
	task := models.Task{ID: b.ids.next(), Text: text}
	b.tasks[q] = append(b.tasks[q], task)
	b.commit()
	return task, true
}

// Delete removes the task from q if it is there.
func (b *Board) Delete(q models.Quadrant, id int64) bool {
	b.mu.Lock()
	i := b.tasks.IndexOf(q, id)
	if i < 0 {
		b.mu.Unlock()
		return false
	}
	b.tasks[q] = append(b.tasks[q][:i], b.tasks[q][i+1:]...)
	b.commit()
	return true
}

// Toggle flips the completed flag of the task in q.
func (b *Board) Toggle(q models.Quadrant, id int64) bool {
	b.mu.Lock()
	i := b.tasks.IndexOf(q, id)
	if i < 0 {
		b.mu.Unlock()
		return false
	}
	b.tasks[q][i].Completed = !b.tasks[q][i].Completed
	b.commit()
	return true
}

// Edit replaces the text of the task in q. Blank or unchanged text is ignored.
func (b *Board) Edit(q models.Quadrant, id int64, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	b.mu.Lock()
	i := b.tasks.IndexOf(q, id)
	if i < 0 || b.tasks[q][i].Text == text {
		b.mu.Unlock()
		return false
	}
	b.tasks[q][i].Text = text
	b.commit()
	return true
}

// Move takes the task out of from and inserts it into to at index, counted
// after the removal. Any index outside [0, len) appends, negative ones
// included. from == to reorders within the quadrant.
func (b *Board) Move(from, to models.Quadrant, id int64, index int) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}

	b.mu.Lock()
	i := b.tasks.IndexOf(from, id)
	if i < 0 {
		b.mu.Unlock()
		return false
	}

	task := b.tasks[from][i]
	src := make([]models.Task, 0, len(b.tasks[from])-1)
	src = append(src, b.tasks[from][:i]...)
	src = append(src, b.tasks[from][i+1:]...)

	dst := src
	if from != to {
		dst = b.tasks[to]
	}
	index = clamp(index, len(dst))
	if from == to && index == i {
		b.mu.Unlock()
		return false
	}

	moved := make([]models.Task, 0, len(dst)+1)
	moved = append(moved, dst[:index]...)
	moved = append(moved, task)
	moved = append(moved, dst[index:]...)

	if from != to {
		b.tasks[from] = src
	}
	b.tasks[to] = moved
	b.commit()
	return true
}

// ClearAll empties every quadrant.
func (b *Board) ClearAll() {
	b.mu.Lock()
	b.tasks = models.NewCollection()
	b.commit()
}

// Subscribe registers h for change notifications. The returned function
// removes it again.
func (b *Board) Subscribe(h Handler) (unsubscribe func()) {
	b.subMu.Lock()
	defer b.subMu.Unlock()

	b.nextSub++
	id := b.nextSub
	b.handlers = append(b.handlers, handlerEntry{id: id, handler: h})

	return func() {
		b.subMu.Lock()
		defer b.subMu.Unlock()
		filtered := make([]handlerEntry, 0, len(b.handlers))
		for _, e := range b.handlers {
			if e.id != id {
				filtered = append(filtered, e)
			}
		}
		b.handlers = filtered
	}
}

// commit saves the collection and notifies subscribers. It must be called
// with b.mu held and releases it.
func (b *Board) commit() {
	if err := b.storage.Save(b.tasks); err != nil {
		log.Printf("Failed to save tasks: %v", err)
	}
	snap := b.tasks.Clone()

	// Taking notifyMu before releasing mu keeps notifications in mutation order.
	b.notifyMu.Lock()
	b.mu.Unlock()
	defer b.notifyMu.Unlock()

	b.subMu.Lock()
	targets := make([]Handler, 0, len(b.handlers))
	for _, e := range b.handlers {
		targets = append(targets, e.handler)
	}
	b.subMu.Unlock()

	for _, h := range targets {
		h(snap.Clone())
	}
}

func clamp(index, n int) int {
	if index < 0 || index > n {
		return n
	}
	return index
}
