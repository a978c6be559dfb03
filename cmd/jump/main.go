package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

var version = "dev"

func main() {
	// Names in any script render correctly on terminals without a UTF-8 locale.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	c := newCLI()
	err := newRootCmd(c).Execute()
	if closeErr := c.close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "jump: %v\n", err)
		os.Exit(1)
	}
}
