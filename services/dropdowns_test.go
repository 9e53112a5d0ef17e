package services

import "testing"

// Every unit offered in the dropdown must be convertible, otherwise a
// user can pick a unit the costing engine then rejects.
func TestUnitOptionsAllConvertible(t *testing.T) {
	for _, u := range UnitOptions {
		if _, ok := ToBase(1, u); !ok {
			t.Errorf("unit option %q is not convertible", u)
		}
	}
}

func TestPackUnitOptionsAreBaseUnits(t *testing.T) {
	for _, u := range PackUnitOptions {
		if u != string(BaseGrams) && u != string(BaseMillilitres) {
			t.Errorf("pack unit option %q is not a base unit", u)
		}
	}
}

func TestOrderStatusOptionsContainLifecycle(t *testing.T) {
	required := []string{"draft", "confirmed", "delivered", "cancelled"}
	for _, want := range required {
		found := false
		for _, s := range OrderStatusOptions {
			if s == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("order status %q missing from options", want)
		}
	}
}
