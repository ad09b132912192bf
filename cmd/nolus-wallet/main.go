package main

import (
	"os"

	"github.com/tessellated-io/nolus-wallet/cmd/nolus-wallet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
