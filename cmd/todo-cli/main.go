package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"

	"github.com/MarwahManan/Hackathon-2/internal/cli"
	"github.com/MarwahManan/Hackathon-2/internal/todo"
)

func main() {
	repo := todo.NewRepository()
	service := todo.NewService(repo)
	parser := cli.NewParser(service, cli.Formatter{})

	fmt.Println("Console Todo Application - Phase I")
	fmt.Println("Type 'help' for available commands")
	fmt.Println()

	// Ctrl+C gets the same goodbye as the exit command. All tasks live in
	// memory only and are discarded on termination.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		fmt.Println("\n" + cli.GoodbyeMessage)
		os.Exit(0)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			// End of input behaves like exit.
			fmt.Println("\n" + cli.GoodbyeMessage)
			return
		}

		output, quit := parser.ParseCommand(scanner.Text())
		if output != "" {
			fmt.Println(output)
		}
		if quit {
			return
		}
	}
}
