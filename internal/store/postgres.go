package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pautaops/pauta/internal/catalog"
	"github.com/pautaops/pauta/internal/record"
)

// DBTX is the subset of pgx operations the store needs. Satisfied by both
// *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// copyFromer is implemented by connection types that support the COPY
// protocol (pools and conns, but not generic DBTX). ImportMany uses it when
// available and falls back to batched inserts otherwise.
type copyFromer interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Postgres implements Store against a Postgres table whose columns are
// declared by the catalog. All SQL is generated from the catalog, so both
// variants share one implementation.
type Postgres struct {
	db  DBTX
	cat *catalog.Catalog
}

// NewPostgres creates a Postgres store for one record variant.
func NewPostgres(db DBTX, cat *catalog.Catalog) *Postgres {
	return &Postgres{db: db, cat: cat}
}

func (p *Postgres) selectList() string {
	return strings.Join(p.cat.Columns(), ", ")
}

func (p *Postgres) GetAll(ctx context.Context) ([]record.Record, error) {
	q := fmt.Sprintf("SELECT %s FROM %s ORDER BY created_at DESC", p.selectList(), p.cat.Table)
	rows, err := p.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", p.cat.Table, err)
	}
	defer rows.Close()
	return p.collect(rows)
}

func (p *Postgres) GetByID(ctx context.Context, id string) (record.Record, error) {
	q := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", p.selectList(), p.cat.Table, p.cat.IDColumn())
	rows, err := p.db.Query(ctx, q, id)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", p.cat.Table, err)
	}
	defer rows.Close()
	recs, err := p.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s %q: %w", p.cat.Variant, id, ErrNotFound)
	}
	return recs[0], nil
}

func (p *Postgres) Create(ctx context.Context, rec record.Record) (record.Record, error) {
	row := record.ToStorage(p.cat, rec)

	var cols []string
	var args []any
	var marks []string
	for _, c := range p.cat.Columns() {
		v, ok := row[c]
		if !ok {
			continue
		}
		cols = append(cols, c)
		args = append(args, v)
		marks = append(marks, fmt.Sprintf("$%d", len(args)))
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("create %s: empty record", p.cat.Variant)
	}

	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		p.cat.Table, strings.Join(cols, ", "), strings.Join(marks, ", "), p.selectList())
	rows, err := p.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", p.cat.Table, err)
	}
	defer rows.Close()
	return p.collectOne(rows)
}

func (p *Postgres) Update(ctx context.Context, id string, partial record.Record) (record.Record, error) {
	row := record.ToStorage(p.cat, partial)

	var sets []string
	var args []any
	for _, c := range p.cat.Columns() {
		v, ok := row[c]
		if !ok {
			continue
		}
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", c, len(args)))
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)

	q := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d RETURNING %s",
		p.cat.Table, strings.Join(sets, ", "), p.cat.IDColumn(), len(args), p.selectList())
	rows, err := p.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", p.cat.Table, err)
	}
	defer rows.Close()
	rec, err := p.collectOne(rows)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s %q: %w", p.cat.Variant, id, ErrNotFound)
	}
	return rec, err
}

func (p *Postgres) Delete(ctx context.Context, id string) error {
	q := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", p.cat.Table, p.cat.IDColumn())
	tag, err := p.db.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", p.cat.Table, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %q: %w", p.cat.Variant, id, ErrNotFound)
	}
	return nil
}

// ImportMany inserts the batch via the COPY protocol when the connection
// supports it, then re-reads the inserted rows so the returned records carry
// storage-assigned values. Without COPY support it degrades to row-by-row
// inserts.
func (p *Postgres) ImportMany(ctx context.Context, recs []record.Record) ([]record.Record, error) {
	if len(recs) == 0 {
		return nil, nil
	}

	cf, ok := p.db.(copyFromer)
	if !ok {
		out := make([]record.Record, 0, len(recs))
		for _, rec := range recs {
			created, err := p.Create(ctx, rec)
			if err != nil {
				return nil, err
			}
			out = append(out, created)
		}
		return out, nil
	}

	cols := p.cat.Columns()
	ids := make([]string, len(recs))
	src := make([][]any, len(recs))
	for i, rec := range recs {
		ids[i] = rec.String(p.cat.IDKey)
		row := record.ToStorage(p.cat, rec)
		values := make([]any, len(cols))
		for j, c := range cols {
			values[j] = row[c] // absent columns copy as NULL
		}
		src[i] = values
	}

	if _, err := cf.CopyFrom(ctx, pgx.Identifier{p.cat.Table}, cols, pgx.CopyFromRows(src)); err != nil {
		return nil, fmt.Errorf("copy into %s: %w", p.cat.Table, err)
	}

	q := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ANY($1) ORDER BY created_at DESC",
		p.selectList(), p.cat.Table, p.cat.IDColumn())
	rows, err := p.db.Query(ctx, q, ids)
	if err != nil {
		return nil, fmt.Errorf("read back imported rows: %w", err)
	}
	defer rows.Close()
	return p.collect(rows)
}

func (p *Postgres) collect(rows pgx.Rows) ([]record.Record, error) {
	cols := p.cat.Columns()
	var out []record.Record
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", p.cat.Table, err)
		}
		row := make(record.Row, len(cols))
		for i, c := range cols {
			row[c] = plainValue(values[i])
		}
		out = append(out, record.FromStorage(p.cat, row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", p.cat.Table, err)
	}
	return out, nil
}

func (p *Postgres) collectOne(rows pgx.Rows) (record.Record, error) {
	recs, err := p.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, pgx.ErrNoRows
	}
	return recs[0], nil
}

// plainValue flattens pgx scan values into the plain Go scalars the codec
// understands.
func plainValue(v any) any {
	switch t := v.(type) {
	case pgtype.Numeric:
		f, err := t.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case time.Time:
		return t.Format("2006-01-02")
	default:
		return v
	}
}
