package todo

import "sync"

// Repository holds the authoritative in-memory task collection. Tasks are
// kept in creation order; IDs come from a monotonic counter and are never
// reused, even after deletes.
type Repository struct {
	mu     sync.RWMutex
	todos  []Todo
	nextID int
}

func NewRepository() *Repository {
	return &Repository{nextID: 1}
}

// GetAll returns a copy of all tasks in creation order.
func (r *Repository) GetAll() []Todo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Todo, len(r.todos))
	copy(out, r.todos)
	return out
}

// Add stores a new task with the next sequential ID. The description is
// validated by the caller.
func (r *Repository) Add(description string) Todo {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := Todo{ID: r.nextID, Description: description}
	r.todos = append(r.todos, t)
	r.nextID++
	return t
}

// GetByID returns the task with the given ID, or false if absent.
func (r *Repository) GetByID(id int) (Todo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.todos {
		if t.ID == id {
			return t, true
		}
	}
	return Todo{}, false
}

// Update replaces the description of the task with the given ID.
func (r *Repository) Update(id int, description string) (Todo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.todos {
		if r.todos[i].ID == id {
			r.todos[i].Description = description
			return r.todos[i], true
		}
	}
	return Todo{}, false
}

// Delete removes the task with the given ID. Returns false if no task
// matched; deleting an absent ID is not an error at this layer.
func (r *Repository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.todos {
		if r.todos[i].ID == id {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return true
		}
	}
	return false
}

// MarkComplete sets the completed flag on the task with the given ID.
func (r *Repository) MarkComplete(id int) (Todo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.todos {
		if r.todos[i].ID == id {
			r.todos[i].Completed = true
			return r.todos[i], true
		}
	}
	return Todo{}, false
}
