package main

import (
	"os"

	"github.com/aussiebroadwan/pinboard/internal/pinboard/cli"
)

func main() {
	os.Exit(cli.Execute())
}
