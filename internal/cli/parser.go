package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MarwahManan/Hackathon-2/internal/todo"
)

// GoodbyeMessage is printed on every exit path: the exit command, Ctrl+C and
// end of input. In-memory tasks are discarded on exit by design.
const GoodbyeMessage = "Goodbye! All tasks have been cleared from memory."

// Parser routes raw input lines to the task service and returns the rendered
// output along with a flag telling the loop to terminate.
type Parser struct {
	service   *todo.Service
	formatter Formatter
}

func NewParser(service *todo.Service, formatter Formatter) *Parser {
	return &Parser{service: service, formatter: formatter}
}

// ParseCommand executes one input line. Blank lines produce no output.
func (p *Parser) ParseCommand(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}

	parts := strings.SplitN(input, " ", 2)
	command := strings.ToLower(parts[0])
	args := ""
	if len(parts) > 1 {
		args = strings.TrimSpace(parts[1])
	}

	switch command {
	case "add":
		return p.handleAdd(args), false
	case "view":
		return p.handleView(), false
	case "update":
		return p.handleUpdate(args), false
	case "delete":
		return p.handleDelete(args), false
	case "complete":
		return p.handleComplete(args), false
	case "help":
		return p.formatter.FormatHelp(), false
	case "exit":
		return GoodbyeMessage, true
	default:
		return fmt.Sprintf("✗ Error: Unknown command '%s'\nType 'help' to see available commands", command), false
	}
}

func (p *Parser) handleView() string {
	return p.formatter.FormatTaskList(p.service.ViewAll())
}

func (p *Parser) handleAdd(args string) string {
	if args == "" {
		return "✗ Error: Missing required argument\nUsage: add <description>"
	}
	_, msg, _ := p.service.Add(args)
	return msg
}

func (p *Parser) handleUpdate(args string) string {
	if args == "" {
		return "✗ Error: Missing required arguments\nUsage: update <id> <description>"
	}

	parts := strings.SplitN(args, " ", 2)
	if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
		return "✗ Error: Missing description\nUsage: update <id> <description>"
	}

	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return "✗ Error: Task ID must be a positive integer"
	}
	msg, _ := p.service.Update(id, parts[1])
	return msg
}

func (p *Parser) handleDelete(args string) string {
	if args == "" {
		return "✗ Error: Missing required argument\nUsage: delete <id>"
	}

	id, err := strconv.Atoi(args)
	if err != nil {
		return "✗ Error: Task ID must be a positive integer"
	}
	msg, _ := p.service.Delete(id)
	return msg
}

func (p *Parser) handleComplete(args string) string {
	if args == "" {
		return "✗ Error: Missing required argument\nUsage: complete <id>"
	}

	id, err := strconv.Atoi(args)
	if err != nil {
		return "✗ Error: Task ID must be a positive integer"
	}
	msg, _ := p.service.Complete(id)
	return msg
}
