package main

import (
	"os"

	"github.com/nguyentantai21042004/deck-flow/cmd/deckflow/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
