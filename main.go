// Ticktock - a countdown tracker for the command line.
package main

import (
	"os"

	"github.com/espian/ticktock/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
