package main

import (
	"os"

	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
