package main

import (
	"fmt"
	"os"
)

func main() {
	app := &App{}
	if err := SetupCommands(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
