// Package pg provides the PostgreSQL plumbing behind the account store:
// pooled connectivity via pgx/v5, schema migrations via goose, and the error
// helpers the store uses to translate driver errors into domain errors.
//
// Config is populated from environment variables (see pkg/config). Connect
// retries with linear backoff and verifies the connection with a ping before
// handing the pool out. Migrate applies the SQL migrations shipped under
// pkg/user/migrations, routing goose output through the application's slog
// logger.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    // handle error
//	}
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//	    // handle error
//	}
//
// IsDuplicateKeyError (SQLSTATE 23505) is what makes the provisioner's
// re-fetch-on-conflict recovery possible against Postgres.
package pg
