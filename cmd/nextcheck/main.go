package main

import (
	"context"
	"os"

	"github.com/nextcheck/nextcheck/internal/adapters/inbound/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background()))
}
