// Command sixdegrees answers "six degrees of Kevin Bacon" queries over a
// movie/cast dataset, from the terminal or as an HTTP service.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
