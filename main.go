package main

import (
	"os"

	"github.com/vivainio/loggoblin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
