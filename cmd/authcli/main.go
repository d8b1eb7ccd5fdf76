package main

import (
	"context"
	"fmt"
	"os"

	"github.com/avolkov/userauth/internal/cli"
	"github.com/avolkov/userauth/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: authcli <register|login|verify|renew|logout|ping> [flags]")
		os.Exit(2)
	}
	command := os.Args[1]

	cfg, err := config.Load(os.Args[2:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Run(ctx, command); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
