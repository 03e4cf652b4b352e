package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"loan-summary/internal/report"
)

// Config holds Postgres connection settings for report persistence.
type Config struct {
	URL    string
	Schema string
	Tag    string
}

var validSchema = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// StoreRun persists one report run and its summary rows, creating the
// schema on first use. Each call opens its own connection; runs are
// one-shot batch jobs, not a long-lived service.
func StoreRun(source string, rows []report.SummaryRow, cfg Config) (string, error) {
	schema, err := sanitizeSchema(cfg.Schema)
	if err != nil {
		return "", err
	}

	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return "", err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return "", err
	}
	if err := ensureSchema(ctx, db, schema); err != nil {
		return "", err
	}
	return storeRunTx(ctx, db, schema, source, cfg.Tag, rows)
}

func sanitizeSchema(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errors.New("db schema is required")
	}
	if !validSchema.MatchString(value) {
		return "", fmt.Errorf("invalid schema name: %s", value)
	}
	return value, nil
}

func storeRunTx(ctx context.Context, db *sql.DB, schema, source, tag string, rows []report.SummaryRow) (string, error) {
	runID := uuid.New()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	// The All row is always present, so bucket_count excludes it.
	query, args, err := builder.
		Insert(schema+".report_runs").
		Columns("id", "source_file", "bucket_count", "run_tag").
		Values(runID, source, len(rows)-1, nullString(tag)).
		ToSql()
	if err != nil {
		_ = tx.Rollback()
		return "", err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		_ = tx.Rollback()
		return "", err
	}

	for position, row := range rows {
		query, args, err := builder.
			Insert(schema+".report_rows").
			Columns(
				"id", "run_id", "position", "bucket",
				"total_issued", "fully_paid", "current_balance", "late_balance",
				"charged_off_net", "principal_payments", "interest_payments",
				"avg_interest_rate",
			).
			Values(
				uuid.New(), runID, position, row.Bucket,
				row.TotalIssued, row.FullyPaid, row.Current, row.Late,
				row.ChargedOffNet, row.PrincipalPaymentsReceived, row.InterestPaymentsReceived,
				row.AvgInterestRate,
			).
			ToSql()
		if err != nil {
			_ = tx.Rollback()
			return "", err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			_ = tx.Rollback()
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID.String(), nil
}

func ensureSchema(ctx context.Context, db *sql.DB, schema string) error {
	if _, err := db.ExecContext(ctx, fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, schema)); err != nil {
		return err
	}

	_, err := db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s.report_runs (
			id uuid PRIMARY KEY,
			source_file text NOT NULL,
			bucket_count integer NOT NULL,
			run_tag text,
			created_at timestamptz NOT NULL DEFAULT now()
		)`, schema))
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s.report_rows (
			id uuid PRIMARY KEY,
			run_id uuid NOT NULL REFERENCES %s.report_runs(id) ON DELETE CASCADE,
			position integer NOT NULL,
			bucket text NOT NULL,
			total_issued numeric(16,2) NOT NULL,
			fully_paid numeric(16,2) NOT NULL,
			current_balance numeric(16,2) NOT NULL,
			late_balance numeric(16,2) NOT NULL,
			charged_off_net numeric(16,2) NOT NULL,
			principal_payments numeric(16,2) NOT NULL,
			interest_payments numeric(16,2) NOT NULL,
			avg_interest_rate numeric(9,6) NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		)`, schema, schema))
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_report_rows_run_idx ON %s.report_rows (run_id)`, schema, schema))
	return err
}

func nullString(value string) sql.NullString {
	if strings.TrimSpace(value) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}
