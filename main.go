package main

import (
	"context"
	"os"

	"github.com/m-mizutani/relpub/pkg/cli"
	"github.com/m-mizutani/relpub/pkg/domain/types"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(types.ExitCode(err))
	}
}
