package main

import (
	"github.com/axscope/axscope/cmd"

	// Register the darwin platform backend.
	_ "github.com/axscope/axscope/internal/platform/darwin"
)

func main() {
	cmd.Execute()
}
