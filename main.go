package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"fjacquet/budget-planner/cmd/plan"
	"fjacquet/budget-planner/cmd/root"
	"fjacquet/budget-planner/cmd/summary"
	"fjacquet/budget-planner/internal/config"
)

func init() {
	// .env and LOG_LEVEL apply to the bootstrap logger before any command runs.
	config.LoadEnv()
	config.ConfigureLogging()

	root.Init()
	root.Cmd.AddCommand(plan.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.Cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
