package pos

import "testing"

func TestBasePrices(t *testing.T) {
	cases := []struct {
		size MealSize
		want Cents
	}{
		{SizeBowl, 830},
		{SizePlate, 980},
		{SizeBiggerPlate, 1130},
	}

	for _, c := range cases {
		if got := BasePrice(c.size); got != c.want {
			t.Errorf("BasePrice(%s) = %d, want %d", c.size, got, c.want)
		}
	}
}

func TestSurchargeStacks(t *testing.T) {
	if got := Surcharge(CategoryEntree, false); got != 0 {
		t.Errorf("plain entree surcharge = %d, want 0", got)
	}
	if got := Surcharge(CategoryEntree, true); got != 200 {
		t.Errorf("premium entree surcharge = %d, want 200", got)
	}
	if got := Surcharge(CategoryAppetizer, false); got != 200 {
		t.Errorf("appetizer surcharge = %d, want 200", got)
	}
	// both surcharges apply to a premium appetizer
	if got := Surcharge(CategoryAppetizer, true); got != 400 {
		t.Errorf("premium appetizer surcharge = %d, want 400", got)
	}
}

func TestCapacityLimitsPerSize(t *testing.T) {
	cases := []struct {
		size    MealSize
		sides   int
		entrees int
	}{
		{SizeBowl, 1, 1},
		{SizePlate, 1, 2},
		{SizeBiggerPlate, 1, 3},
	}

	for _, c := range cases {
		limits := Limits(c.size)
		if limits.Sides != c.sides || limits.Entrees != c.entrees {
			t.Errorf("Limits(%s) = %+v, want {Sides:%d Entrees:%d}",
				c.size, limits, c.sides, c.entrees)
		}
	}
}

func TestParseMealSize(t *testing.T) {
	if _, err := ParseMealSize("Bigger Plate"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseMealSize("Mega Plate"); err == nil {
		t.Fatal("expected error for unknown size")
	}
}

func TestParseCategory(t *testing.T) {
	if _, err := ParseCategory("appetizer"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseCategory("dessert"); err == nil {
		t.Fatal("expected error for unknown category")
	}
}
