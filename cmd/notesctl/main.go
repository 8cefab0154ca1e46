// Command notesctl seeds and inspects a notekeeper store from the shell.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	ctx := context.Background()
	a := newApp()

	err := newRootCmd(a).ExecuteContext(ctx)
	if cerr := a.close(ctx); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
