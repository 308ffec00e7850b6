// main holds the entry logic for gitroast CLI.
package main

import (
	"os"

	"github.com/huangsam/gitroast/cmd"
	"github.com/huangsam/gitroast/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogError(err)
		os.Exit(contract.ExitCodeOf(err))
	}
}
