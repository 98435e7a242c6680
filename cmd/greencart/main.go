package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rshade/greencart/internal/cli"
	"github.com/rshade/greencart/pkg/version"
)

func run(ctx context.Context, args []string) error {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
