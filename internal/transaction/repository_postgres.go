package transaction

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"pandapos/internal/pos"
)

type PostgresStore struct {
	db      *pgxpool.Pool
	archive Archiver
}

// NewPostgresStore builds the persistence endpoint. archive may be nil.
func NewPostgresStore(db *pgxpool.Pool, archive Archiver) *PostgresStore {
	return &PostgresStore{db: db, archive: archive}
}

type orderDoc struct {
	Size     pos.MealSize       `json:"size"`
	Items    []pos.SelectedItem `json:"items"`
	Subtotal float64            `json:"subtotal"`
}

type receiptDoc struct {
	TransactionID string     `json:"transactionId"`
	EmployeeID    string     `json:"employeeId"`
	Orders        []orderDoc `json:"orders"`
	TotalPrice    float64    `json:"totalPrice"`
}

func (s *PostgresStore) Save(ctx context.Context, f pos.Finalization) (string, error) {
	docs := make([]orderDoc, 0, len(f.Orders))
	for _, o := range f.Orders {
		docs = append(docs, orderDoc{
			Size:     o.Size,
			Items:    o.Items,
			Subtotal: o.Subtotal.Dollars(),
		})
	}

	ordersJSON, err := json.Marshal(docs)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()

	_, err = s.db.Exec(ctx, `
		INSERT INTO transactions (
			transaction_id,
			employee_id,
			orders,
			total_price,
			created_at
		)
		VALUES ($1, $2, $3, $4, now())
	`, id, f.EmployeeID, ordersJSON, f.TotalPrice.Dollars())
	if err != nil {
		return "", err
	}

	s.archiveReceipt(ctx, id, f, docs)

	return id, nil
}

func (s *PostgresStore) archiveReceipt(ctx context.Context, id string, f pos.Finalization, docs []orderDoc) {
	if s.archive == nil {
		return
	}

	receipt, err := json.Marshal(receiptDoc{
		TransactionID: id,
		EmployeeID:    f.EmployeeID,
		Orders:        docs,
		TotalPrice:    f.TotalPrice.Dollars(),
	})
	if err != nil {
		log.Println("receipt marshal failed:", err)
		return
	}

	key := fmt.Sprintf("receipts/%s.json", id)
	if _, err := s.archive.Put(ctx, key, receipt, "application/json"); err != nil {
		log.Println("receipt archive failed:", err)
	}
}
