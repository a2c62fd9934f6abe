package pos

import "fmt"

// Category is the closed set of menu categories. Capacity checks are
// exhaustive over it, so an unknown category can never slip past them.
type Category string

const (
	CategorySide      Category = "side"
	CategoryEntree    Category = "entree"
	CategoryAppetizer Category = "appetizer"
)

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategorySide, CategoryEntree, CategoryAppetizer:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// MealSize is the meal being built. Its base price is charged the
// moment the size is chosen.
type MealSize string

const (
	SizeBowl        MealSize = "Bowl"
	SizePlate       MealSize = "Plate"
	SizeBiggerPlate MealSize = "Bigger Plate"
)

func ParseMealSize(s string) (MealSize, error) {
	switch MealSize(s) {
	case SizeBowl, SizePlate, SizeBiggerPlate:
		return MealSize(s), nil
	}
	return "", fmt.Errorf("unknown meal size %q", s)
}

// Cents is a money amount in integer cents. Totals are kept in cents so
// that reset unwinds a charge exactly, with no fractional drift.
type Cents int64

func (c Cents) Dollars() float64 { return float64(c) / 100 }

type CapacityLimits struct {
	Sides   int
	Entrees int
}

var basePrices = map[MealSize]Cents{
	SizeBowl:        830,
	SizePlate:       980,
	SizeBiggerPlate: 1130,
}

var sizeLimits = map[MealSize]CapacityLimits{
	SizeBowl:        {Sides: 1, Entrees: 1},
	SizePlate:       {Sides: 1, Entrees: 2},
	SizeBiggerPlate: {Sides: 1, Entrees: 3},
}

const (
	premiumSurcharge   Cents = 200
	appetizerSurcharge Cents = 200
)

func BasePrice(size MealSize) Cents { return basePrices[size] }

func Limits(size MealSize) CapacityLimits { return sizeLimits[size] }

// Surcharge prices a single item. Premium and appetizer surcharges
// stack: an item that is both pays both.
func Surcharge(category Category, premium bool) Cents {
	var c Cents
	if premium {
		c += premiumSurcharge
	}
	if category == CategoryAppetizer {
		c += appetizerSurcharge
	}
	return c
}
