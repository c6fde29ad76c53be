package main

import (
	"context"
	"encoding/json"
	"io"

	"socialdesk/config"
	"socialdesk/internal/domain/lifecycle"
	"socialdesk/internal/errors"
	"socialdesk/internal/infra/auth"
	logs "socialdesk/internal/infra/log"
	"socialdesk/internal/infra/metrics"
	"socialdesk/internal/infra/persistence/postgres"
	"socialdesk/internal/usecase/impl"

	"go.uber.org/fx"
)

// withApp builds the usecase graph, starts it, populates targets and runs fn.
// The database pool is closed when fn returns.
func withApp(ctx context.Context, fn func(context.Context) error, targets ...any) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			metrics.New,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			impl.NewAuthService,
			impl.NewStockLedgerService,
		),
		postgres.Module,
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return errors.WithStack(err)
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.WithStack(err)
	}

	runErr := fn(ctx)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.WithStack(err)
	}

	return runErr
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}
