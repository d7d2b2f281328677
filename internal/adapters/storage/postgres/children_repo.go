package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"vaccine-reminder/internal/domain/children"
)

// ChildrenRepo persiste cada niño junto con su secuencia completa de dosis.
//
// Esquema esperado:
//
//	children(id TEXT PK, owner_user_id TEXT, name TEXT, birth_date DATE,
//	         created_at TIMESTAMPTZ, updated_at TIMESTAMPTZ)
//	dose_obligations(child_id TEXT REFERENCES children(id) ON DELETE CASCADE,
//	         position INT, vaccine_name TEXT, dose_number INT,
//	         recommended_start DATE, recommended_end DATE,
//	         status TEXT, administered_at DATE NULL,
//	         PRIMARY KEY (child_id, position))
//
// position es el índice dentro de la secuencia ya ordenada; el orden se
// calcula una sola vez al registrar y acá solo se conserva.
type ChildrenRepo struct {
	db *sql.DB
}

func NewChildrenRepo(db *sql.DB) *ChildrenRepo {
	return &ChildrenRepo{db: db}
}

func (r *ChildrenRepo) Create(ctx context.Context, c children.Child) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO children (id, owner_user_id, name, birth_date, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		c.ID,
		c.OwnerUserID,
		c.Name,
		c.BirthDate,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if err := insertObligations(ctx, tx, c.ID, c.Obligations); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ChildrenRepo) GetByID(ctx context.Context, id string) (children.Child, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return children.Child{}, children.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_user_id, name, birth_date, created_at, updated_at
		FROM children
		WHERE id = $1
	`, id)

	var c children.Child
	if err := row.Scan(
		&c.ID,
		&c.OwnerUserID,
		&c.Name,
		&c.BirthDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return children.Child{}, children.ErrNotFound
		}
		return children.Child{}, err
	}

	obligations, err := r.loadObligations(ctx, c.ID)
	if err != nil {
		return children.Child{}, err
	}
	c.Obligations = obligations

	return c, nil
}

func (r *ChildrenRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]children.Child, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_user_id, name, birth_date, created_at, updated_at
		FROM children
		WHERE owner_user_id = $1
		ORDER BY created_at ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]children.Child, 0)
	for rows.Next() {
		var c children.Child
		if err := rows.Scan(
			&c.ID,
			&c.OwnerUserID,
			&c.Name,
			&c.BirthDate,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		obligations, err := r.loadObligations(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Obligations = obligations
	}

	return out, nil
}

// Update reescribe el niño y toda su secuencia de dosis en una transacción.
// Borrar e insertar las dosis es más simple que un diff y la secuencia es
// chica (decenas de filas).
func (r *ChildrenRepo) Update(ctx context.Context, c children.Child) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE children
		SET name = $2, birth_date = $3, updated_at = $4
		WHERE id = $1
	`,
		c.ID,
		c.Name,
		c.BirthDate,
		c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return children.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM dose_obligations WHERE child_id = $1`, c.ID); err != nil {
		return err
	}
	if err := insertObligations(ctx, tx, c.ID, c.Obligations); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ChildrenRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM children WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return children.ErrNotFound
	}
	return nil
}

func (r *ChildrenRepo) loadObligations(ctx context.Context, childID string) ([]children.DoseObligation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT vaccine_name, dose_number, recommended_start, recommended_end, status, administered_at
		FROM dose_obligations
		WHERE child_id = $1
		ORDER BY position ASC
	`, childID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]children.DoseObligation, 0)
	for rows.Next() {
		var o children.DoseObligation
		var administeredAt sql.NullTime
		if err := rows.Scan(
			&o.VaccineName,
			&o.DoseNumber,
			&o.RecommendedStart,
			&o.RecommendedEnd,
			&o.Status,
			&administeredAt,
		); err != nil {
			return nil, err
		}
		if administeredAt.Valid {
			t := administeredAt.Time
			o.AdministeredAt = &t
		}
		out = append(out, o)
	}

	return out, rows.Err()
}

func insertObligations(ctx context.Context, tx *sql.Tx, childID string, obligations []children.DoseObligation) error {
	for pos, o := range obligations {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO dose_obligations (
				child_id, position,
				vaccine_name, dose_number,
				recommended_start, recommended_end,
				status, administered_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		`,
			childID,
			pos,
			o.VaccineName,
			o.DoseNumber,
			o.RecommendedStart,
			o.RecommendedEnd,
			o.Status,
			toNullDate(o.AdministeredAt),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// administered_at es DATE, lo pasamos como NullTime para simplificar
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
