package models

import "testing"

func TestValidEventDay(t *testing.T) {
	for _, d := range []int{1, 2, 3} {
		if !ValidEventDay(d) {
			t.Fatalf("day %d should be valid", d)
		}
	}
	for _, d := range []int{0, -1, 4, 100} {
		if ValidEventDay(d) {
			t.Fatalf("day %d should be invalid", d)
		}
	}
}
