package main

import (
	"os"

	"github.com/anirudh/studyloop/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
