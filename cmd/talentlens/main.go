// main is the entry point for the talentlens CLI.
package main

import (
	"fmt"
	"os"

	"github.com/talentlens/talentlens/cmd"
	"github.com/talentlens/talentlens/internal/histstore"
)

func main() {
	err := cmd.Execute()

	// Close after command completion so os.Exit cannot skip cleanup.
	histstore.CloseHistory()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
