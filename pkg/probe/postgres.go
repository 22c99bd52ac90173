package probe

import (
	"context"
	"fmt"

	"github.com/devantler-tech/farmops/pkg/client/netretry"
	"github.com/devantler-tech/farmops/pkg/readiness"
	"github.com/jackc/pgx/v5"
)

// Pinger is the subset of *pgx.Conn used by the Postgres probe.
type Pinger interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Connector opens a connection for a DSN.
type Connector func(ctx context.Context, dsn string) (Pinger, error)

// PgxConnector connects with pgx.
func PgxConnector(ctx context.Context, dsn string) (Pinger, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped by the probe
	}

	return conn, nil
}

// Postgres is ready once a fresh connection to dsn can be opened and pinged. Each
// attempt opens and closes its own connection. A nil connect uses PgxConnector.
func Postgres(dsn string, connect Connector) readiness.Probe {
	if connect == nil {
		connect = PgxConnector
	}

	return func(ctx context.Context) readiness.Outcome {
		conn, err := connect(ctx, dsn)
		if err != nil {
			return classify(fmt.Errorf("connect to postgres: %w", err))
		}

		defer func() { _ = conn.Close(ctx) }()

		err = conn.Ping(ctx)
		if err != nil {
			return classify(fmt.Errorf("ping postgres: %w", err))
		}

		return readiness.ReadyOutcome()
	}
}

func classify(err error) readiness.Outcome {
	if netretry.IsTransient(err) {
		return readiness.NotReadyOutcome(err)
	}

	return readiness.ErrorOutcome(err)
}
