package main

import (
	"context"
	"log/slog"
	"os"

	"course-enrollment/cmd/bootstrap"
	"course-enrollment/internal/worker"

	"go.uber.org/fx"
)

// Runs the single enrollment command consumer. Deploy exactly one replica per
// queue: ordering of enrollment writes depends on it.
func main() {
	app := fx.New(
		bootstrap.WorkerOnlyModule,
		fx.Invoke(func(lc fx.Lifecycle, r *worker.Runner, shutdowner fx.Shutdowner, logger *slog.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					// a dead consume loop must take the process down with it
					go func() {
						<-r.Done()
						if err := shutdowner.Shutdown(); err != nil {
							logger.Error("ワーカーの停止要求に失敗しました", "error", err)
						}
					}()
					return nil
				},
			})
		}),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("ワーカーの起動に失敗しました", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("ワーカーの停止に失敗しました", "error", err)
	}

	slog.Info("ワーカーが正常に停止しました")
}
