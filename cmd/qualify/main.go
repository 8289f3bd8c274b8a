package main

import (
	"fmt"
	"os"

	"github.com/ignatzorin/job-qualifier/internal/cli"
	"github.com/ignatzorin/job-qualifier/internal/pkg/apperror"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", apperror.Message(err))
		os.Exit(1)
	}
}
