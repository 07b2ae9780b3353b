package main

import (
	"github.com/quiethours/momentswap/cmd/cli/root"

	// Commands register themselves with the root on import.
	_ "github.com/quiethours/momentswap/cmd/cli/moments"
	_ "github.com/quiethours/momentswap/cmd/cli/seed"
	_ "github.com/quiethours/momentswap/cmd/cli/stats"
)

func main() {
	root.Execute()
}
