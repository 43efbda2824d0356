package utils

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"quadrant-board/models"
)

// DefaultKey is the entry the board is stored under.
const DefaultKey = "quadrant-tasks"

// Storage reads and writes the whole task collection as one JSON value.
type Storage struct {
	db  *sql.DB
	key string
}

// NewStorage returns a Storage over db. An empty key selects DefaultKey.
func NewStorage(db *sql.DB, key string) *Storage {
	if key == "" {
		key = DefaultKey
	}
	return &Storage{db: db, key: key}
}

// Load returns the persisted collection. When nothing is stored, or the stored
// value does not describe a complete collection, it returns the demo tasks.
// An error means the database could not be read; stored tasks may exist and
// must not be replaced.
func (s *Storage) Load() (models.Collection, error) {
	raw, err := s.read()
	if errors.Is(err, sql.ErrNoRows) {
		return DemoTasks(time.Now()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.key, err)
	}

	c, err := ParseCollection(raw)
	if err != nil {
		log.Printf("Stored %q is invalid, using demo tasks: %v", s.key, err)
		return DemoTasks(time.Now()), nil
	}
	return c, nil
}

// Save overwrites the stored value with c.
func (s *Storage) Save(c models.Collection) error {
	data, err := json.Marshal(c.Clone())
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	query := `
	INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.Exec(query, s.key, string(data), time.Now()); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}

func (s *Storage) read() (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", s.key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// ParseCollection decodes a stored collection and checks that it is complete:
// all four quadrants present, no unknown quadrants, unique positive ids and
// non-blank text.
func ParseCollection(raw string) (models.Collection, error) {
	var decoded map[models.Quadrant][]models.Task
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	if decoded == nil {
		return nil, errors.New("no quadrants")
	}

	for q := range decoded {
		if !q.Valid() {
			return nil, fmt.Errorf("unknown quadrant %q", q)
		}
	}

	seen := make(map[int64]bool)
	c := models.NewCollection()
	for _, q := range models.Quadrants {
		tasks, ok := decoded[q]
		if !ok {
			return nil, fmt.Errorf("missing quadrant %q", q)
		}
		for _, t := range tasks {
			if t.ID <= 0 {
				return nil, fmt.Errorf("task has invalid id %d", t.ID)
			}
			if seen[t.ID] {
				return nil, fmt.Errorf("duplicate task id %d", t.ID)
			}
			seen[t.ID] = true
			if strings.TrimSpace(t.Text) == "" {
				return nil, fmt.Errorf("task %d has no text", t.ID)
			}
		}
		if tasks != nil {
			c[q] = tasks
		}
	}
	return c, nil
}

// DemoTasks returns the sample board shown on first start: one open task per quadrant.
func DemoTasks(now time.Time) models.Collection {
	base := now.UnixMilli()
	c := models.NewCollection()
	c[models.UrgentImportant] = []models.Task{{ID: base + 1, Text: "Fix critical production bug"}}
	c[models.NotUrgentImportant] = []models.Task{{ID: base + 2, Text: "Plan quarterly goals and OKRs"}}
	c[models.UrgentNotImportant] = []models.Task{{ID: base + 3, Text: "Respond to non-critical emails"}}
	c[models.NotUrgentNotImportant] = []models.Task{{ID: base + 4, Text: "Browse social media mindlessly"}}
	return c
}
