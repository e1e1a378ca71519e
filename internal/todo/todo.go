// Package todo implements the console task manager: an in-memory task
// collection with auto-increment IDs and the service layer on top of it.
package todo

// Todo is a single console task. IDs are assigned by the repository and
// never change afterwards.
type Todo struct {
	ID          int
	Description string
	Completed   bool
}
