package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Get runs a built query and scans exactly one row into dst.
// pgx.ErrNoRows is returned when the query matches nothing.
func Get(ctx context.Context, q Querier, dst any, query squirrel.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	return pgxscan.Get(ctx, q, dst, sql, args...)
}

// Select runs a built query and scans all rows into the slice pointed to by dst.
func Select(ctx context.Context, q Querier, dst any, query squirrel.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	return pgxscan.Select(ctx, q, dst, sql, args...)
}

// Exec runs a built statement and returns the number of affected rows.
func Exec(ctx context.Context, q Querier, stmt squirrel.Sqlizer) (int64, error) {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
