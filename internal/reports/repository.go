package reports

import "context"

// HourlySales is one row of the sales-history report.
type HourlySales struct {
	HourOfDay     int     `json:"hour_of_day"`
	TotalOrders   int     `json:"total_orders"`
	TotalOrderSum float64 `json:"total_order_sum"`
}

type Repository interface {
	SalesByHour(ctx context.Context) ([]HourlySales, error)
}
