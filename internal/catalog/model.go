package catalog

import "pandapos/internal/pos"

// Food is a selectable item as served to the cashier view. Field names
// follow the wire shape the adapter expects.
type Food struct {
	ID        int          `json:"food_id"`
	Name      string       `json:"food_name"`
	Category  pos.Category `json:"type"`
	Quantity  int          `json:"quantity"`
	Calories  int          `json:"calories"`
	Available bool         `json:"available"`
	Premium   bool         `json:"premium"`
}
