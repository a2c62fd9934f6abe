package reports

import "context"

// Read-only analytics over finished transactions. Reports never touch
// order or ledger state.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) SalesHistory(ctx context.Context) ([]HourlySales, error) {
	return s.repo.SalesByHour(ctx)
}
