package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/syclconfigure/cmd/syclconfigure/commands"
	cerrors "git.home.luguber.info/inful/syclconfigure/internal/errors"
)

func main() {
	var cli commands.CLI
	parser, err := commands.NewParser(&cli)
	if err != nil {
		panic(err)
	}
	if _, err := parser.Parse(os.Args[1:]); err != nil {
		parser.Errorf("%s", err)
		os.Exit(cerrors.ExitInvalidUsage)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	runErr := cli.Run(ctx, &commands.Global{Logger: slog.Default()})
	cancel()

	cerrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(runErr)
}
