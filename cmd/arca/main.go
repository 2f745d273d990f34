package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/arca/pkg/style"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Error("Error: ")+err.Error())
		os.Exit(1)
	}
}
