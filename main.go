package main

import (
	"context"
	"fmt"
	"os"

	"credibility-checker/bootstrap"
)

func main() {
	ctx := context.Background()

	if err := bootstrap.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}
