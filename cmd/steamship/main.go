package main

import (
	"os"

	"github.com/steamship-core/steamship-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
