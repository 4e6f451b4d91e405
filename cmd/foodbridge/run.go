package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/fx"
)

// run starts app, blocks until ctx is cancelled or the app asks to shut down,
// then stops it. The result is the process exit code.
func run(ctx context.Context, app *fx.App, stderr io.Writer) int {
	startCtx, cancelStart := context.WithTimeout(ctx, app.StartTimeout())
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintf(stderr, "failed to start foodbridge: %v\n", err)
		return 1
	}

	code := 0
	select {
	case <-ctx.Done():
	case sig := <-app.Wait():
		code = sig.ExitCode
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(stderr, "failed to stop foodbridge: %v\n", err)
		return 1
	}
	return code
}
