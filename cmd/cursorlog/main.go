package main

import (
	"os"

	"github.com/jerryzhao173985/cursorlog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
