package reports

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) SalesByHour(ctx context.Context) ([]HourlySales, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			EXTRACT(HOUR FROM created_at)::int AS hour_of_day,
			COUNT(transaction_id) AS total_orders,
			SUM(total_price)::NUMERIC(10, 2) AS total_order_sum
		FROM transactions
		GROUP BY hour_of_day
		ORDER BY hour_of_day
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hours []HourlySales

	for rows.Next() {
		var h HourlySales
		if err := rows.Scan(&h.HourOfDay, &h.TotalOrders, &h.TotalOrderSum); err != nil {
			return nil, err
		}
		hours = append(hours, h)
	}

	return hours, rows.Err()
}
