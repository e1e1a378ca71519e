// Package cli parses console commands and renders their output.
package cli

import (
	"fmt"
	"strings"

	"github.com/MarwahManan/Hackathon-2/internal/todo"
)

// Formatter renders tasks and static messages for the console.
type Formatter struct{}

// FormatTaskList renders all tasks, one per line, in creation order.
func (Formatter) FormatTaskList(todos []todo.Todo) string {
	if len(todos) == 0 {
		return FormatEmptyList()
	}

	lines := []string{"Tasks:"}
	for _, t := range todos {
		status := "[ ]"
		if t.Completed {
			status = "[✓]"
		}
		lines = append(lines, fmt.Sprintf("  [%d] %s %s", t.ID, status, t.Description))
	}
	return strings.Join(lines, "\n")
}

func FormatEmptyList() string {
	return "No tasks found. Use 'add' to create a task."
}

func (Formatter) FormatHelp() string {
	return `Console Todo Application - Phase I

Available Commands:
  add <description>     Add a new task
  view                  View all tasks
  update <id> <desc>    Update task description
  delete <id>           Delete a task
  complete <id>         Mark task as complete
  help                  Show this help message
  exit                  Exit the application

Examples:
  add Write unit tests
  view
  update 1 Write integration tests
  complete 1
  delete 1

For more information, see README.md`
}
