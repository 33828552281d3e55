package shift

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rotahq/rota/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) db.Queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const shiftCols = `id, doctor_id, start_min, end_min, room, created_at, updated_at`

func scanShift(row pgx.Row) (*Shift, error) {
	var sh Shift
	err := row.Scan(&sh.ID, &sh.DoctorID, &sh.Start, &sh.End, &sh.Room, &sh.CreatedAt, &sh.UpdatedAt)
	return &sh, err
}

func (r *repoPG) Create(ctx context.Context, sh *Shift) error {
	sh.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO shift (id, doctor_id, start_min, end_min, room)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at, updated_at`,
		sh.ID, sh.DoctorID, int(sh.Start), int(sh.End), sh.Room).
		Scan(&sh.CreatedAt, &sh.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Shift, error) {
	sh, err := scanShift(r.conn(ctx).QueryRow(ctx, `SELECT `+shiftCols+` FROM shift WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sh, nil
}

func (r *repoPG) Update(ctx context.Context, sh *Shift) error {
	return r.conn(ctx).QueryRow(ctx, `
		UPDATE shift SET doctor_id=$2, start_min=$3, end_min=$4, room=$5, updated_at=NOW()
		WHERE id = $1
		RETURNING updated_at`,
		sh.ID, sh.DoctorID, int(sh.Start), int(sh.End), sh.Room).
		Scan(&sh.UpdatedAt)
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM shift WHERE id = $1`, id)
	return err
}

func (r *repoPG) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM shift WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *repoPG) List(ctx context.Context) ([]*Shift, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+shiftCols+` FROM shift ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectShifts(rows)
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Shift, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+shiftCols+` FROM shift WHERE doctor_id = $1 ORDER BY start_min`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectShifts(rows)
}

func (r *repoPG) ListOverlapCandidates(ctx context.Context, doctorID uuid.UUID, excludeID *uuid.UUID) ([]*Shift, error) {
	if excludeID != nil {
		rows, err := r.conn(ctx).Query(ctx,
			`SELECT `+shiftCols+` FROM shift WHERE doctor_id = $1 AND id <> $2 ORDER BY start_min`,
			doctorID, *excludeID)
		if err != nil {
			return nil, err
		}
		defer rows.Close()
		return collectShifts(rows)
	}
	return r.ListByDoctor(ctx, doctorID)
}

func collectShifts(rows pgx.Rows) ([]*Shift, error) {
	var items []*Shift
	for rows.Next() {
		sh, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, sh)
	}
	return items, rows.Err()
}
