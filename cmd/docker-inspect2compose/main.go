package main

import (
	"fmt"
	"os"

	"github.com/docker/inspect2compose/internal/commands"
	"github.com/docker/inspect2compose/internal/inspect"
)

func main() {
	cmd := commands.NewRootCmd("docker-inspect2compose", inspect.NewClient, os.Stdout)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
