package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pandapos/internal/pos"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByCategory(
	ctx context.Context,
	category pos.Category,
) ([]Food, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			food_id,
			food_name,
			type,
			quantity,
			calories,
			available,
			premium
		FROM foods
		WHERE type = $1
		ORDER BY food_id
	`, string(category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var foods []Food

	for rows.Next() {
		var f Food
		var typ string
		if err := rows.Scan(
			&f.ID,
			&f.Name,
			&typ,
			&f.Quantity,
			&f.Calories,
			&f.Available,
			&f.Premium,
		); err != nil {
			return nil, err
		}
		f.Category = pos.Category(typ)
		foods = append(foods, f)
	}

	return foods, rows.Err()
}

func (r *PostgresRepository) GetByID(
	ctx context.Context,
	foodID int,
) (*Food, error) {

	var f Food
	var typ string
	err := r.db.QueryRow(ctx, `
		SELECT
			food_id,
			food_name,
			type,
			quantity,
			calories,
			available,
			premium
		FROM foods
		WHERE food_id = $1
	`, foodID).Scan(
		&f.ID,
		&f.Name,
		&typ,
		&f.Quantity,
		&f.Calories,
		&f.Available,
		&f.Premium,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	f.Category = pos.Category(typ)
	return &f, nil
}
