package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := executeArgs(cmd, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
