package main

import (
	"os"

	"github.com/bossanova808/cabertoss/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
