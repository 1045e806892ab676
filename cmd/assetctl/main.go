package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"assetdesk/cli"
	"assetdesk/providers/configProvider"
)

func main() {
	cfg := configprovider.NewConfigProvider()
	cfg.LoadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(cfg).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", cli.ErrorMessage(err))
		stop()
		os.Exit(1)
	}
}
