package main

import (
	"os"

	"github.com/arthur-debert/graftree/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
