package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-gaming-platform/internal/logger"
	"github.com/sbilibin2017/gw-gaming-platform/internal/pipeline"
)

// logQuery logs a statement on a single line with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// aggregate compiles p and reads every output row into a pipeline.Row.
func aggregate(ctx context.Context, db sqlx.QueryerContext, p pipeline.Pipeline) ([]pipeline.Row, error) {
	query, args, err := pipeline.Compile(p)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryxContext(ctx, query, args...)
	if err != nil {
		logQuery(query, args, nil, err)
		return nil, err
	}
	defer rows.Close()

	var out []pipeline.Row
	for rows.Next() {
		row := make(map[string]any)
		if err = rows.MapScan(row); err != nil {
			break
		}
		out = append(out, pipeline.Row(row))
	}
	if err == nil {
		err = rows.Err()
	}

	logQuery(query, args, len(out), err)

	if err != nil {
		return nil, err
	}
	return out, nil
}

// count runs SELECT COUNT(*) over table filtered by m.
func count(ctx context.Context, db sqlx.QueryerContext, table string, m pipeline.Match) (int64, error) {
	where, args, err := pipeline.CompileMatch(m)
	if err != nil {
		return 0, err
	}
	query := "SELECT COUNT(*) FROM " + table + " " + where

	var n int64
	err = sqlx.GetContext(ctx, db, &n, query, args...)

	logQuery(query, args, n, err)

	return n, err
}
