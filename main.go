// Package main provides the entry point for the o2y CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"o2y/cmd/batch"
	"o2y/cmd/convert"
	"o2y/cmd/detect"
	"o2y/cmd/formats"
	"o2y/cmd/root"
	"o2y/internal/config"
)

func init() {
	// .env must be in the environment before viper reads O2Y_* variables.
	_, _ = config.LoadEnv()

	root.Init()

	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(detect.Cmd)
	root.Cmd.AddCommand(formats.Cmd)

	root.DefaultRun = convert.Run
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := root.Cmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, root.Message(err))
		os.Exit(root.ExitCode(err))
	}
}
