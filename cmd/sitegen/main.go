package main

import (
	"fmt"
	"os"

	"github.com/GoliathBritton/flyfox-ai-platform/internal/sitegen"
)

func main() {
	if err := sitegen.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
