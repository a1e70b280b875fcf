package main

import (
	"os"

	"github.com/leo/vim-mux/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
