// main is the entry point for the finhealth CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/finhealth/cmd"
)

func main() {
	err := cmd.Execute()

	// Profiles must be flushed even when the command failed
	if perr := cmd.StopProfiling(); perr != nil {
		fmt.Fprintln(os.Stderr, "Warning: failed to stop profiling:", perr)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
