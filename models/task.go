package models

// Task is a single item on the board.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Quadrant identifies one of the four priority categories.
type Quadrant string

const (
	UrgentImportant       Quadrant = "urgent-important"
	NotUrgentImportant    Quadrant = "not-urgent-important"
	UrgentNotImportant    Quadrant = "urgent-not-important"
	NotUrgentNotImportant Quadrant = "not-urgent-not-important"
)

// Quadrants lists every quadrant in display order.
var Quadrants = []Quadrant{
	UrgentImportant,
	NotUrgentImportant,
	UrgentNotImportant,
	NotUrgentNotImportant,
}

// Valid reports whether q is one of the four known quadrants.
func (q Quadrant) Valid() bool {
	switch q {
	case UrgentImportant, NotUrgentImportant, UrgentNotImportant, NotUrgentNotImportant:
		return true
	}
	return false
}

// QuadrantConfig is the static display metadata of a quadrant.
type QuadrantConfig struct {
	ID       Quadrant `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Color    string   `json:"color"`
}

var quadrantConfigs = []QuadrantConfig{
	{ID: UrgentImportant, Title: "DO FIRST", Subtitle: "Urgent & Important", Color: "#FF6B6B"},
	{ID: NotUrgentImportant, Title: "SCHEDULE", Subtitle: "Not Urgent but Important", Color: "#6FC2FF"},
	{ID: UrgentNotImportant, Title: "DELEGATE", Subtitle: "Urgent but Not Important", Color: "#FFD500"},
	{ID: NotUrgentNotImportant, Title: "ELIMINATE", Subtitle: "Not Urgent & Not Important", Color: "#4DD4D0"},
}

// QuadrantConfigs returns the metadata of all quadrants in display order.
func QuadrantConfigs() []QuadrantConfig {
	out := make([]QuadrantConfig, len(quadrantConfigs))
	copy(out, quadrantConfigs)
	return out
}

// Collection maps every quadrant to its ordered tasks.
type Collection map[Quadrant][]Task

// NewCollection returns a collection with all four quadrants present and empty.
func NewCollection() Collection {
	c := make(Collection, len(Quadrants))
	for _, q := range Quadrants {
		c[q] = []Task{}
	}
	return c
}

// Clone returns a deep copy. Missing quadrants come back as empty slices.
func (c Collection) Clone() Collection {
	out := make(Collection, len(Quadrants))
	for _, q := range Quadrants {
		tasks := make([]Task, len(c[q]))
		copy(tasks, c[q])
		out[q] = tasks
	}
	return out
}

// Count returns the number of tasks across all quadrants.
func (c Collection) Count() int {
	n := 0
	for _, q := range Quadrants {
		n += len(c[q])
	}
	return n
}

// IndexOf returns the position of the task with the given id in q, or -1.
func (c Collection) IndexOf(q Quadrant, id int64) int {
	for i, t := range c[q] {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// MaxID returns the largest task id in the collection, or 0 when empty.
func (c Collection) MaxID() int64 {
	var maxID int64
	for _, q := range Quadrants {
		for _, t := range c[q] {
			if t.ID > maxID {
				maxID = t.ID
			}
		}
	}
	return maxID
}
