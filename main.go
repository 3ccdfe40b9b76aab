// main is the entry point for the inkwell CLI.
package main

import (
	"os"

	"github.com/inkwellhq/inkwell/cmd"
	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/inkwellhq/inkwell/internal/iocache"
)

func main() {
	err := cmd.Execute()
	iocache.CloseStores()
	if err != nil {
		contract.LogWarn("Command failed", err)
		os.Exit(1)
	}
}
