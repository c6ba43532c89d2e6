package main

import (
	"os"
	"time"

	"daily-todo/internal/cli"
)

func main() {
	// Create repository factory based on environment
	factory := NewRepositoryFactory(getEnvironment())

	root := cli.NewRootCommand(factory.CreateRepository, os.Stdin, os.Stdout, os.Stderr, time.Now)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
