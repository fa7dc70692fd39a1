package main

import (
	"fmt"
	"os"

	"github.com/Ahmed-Anwar-PMO/notesync/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
