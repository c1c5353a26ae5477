package reconcile

import (
	"reflect"
	"testing"

	"med-reconciliation/internal/domain/medications"
)

func TestParseFrequency_RuleTable(t *testing.T) {
	m, n, e, b := medications.SlotMorning, medications.SlotNoon, medications.SlotEvening, medications.SlotBedtime

	cases := []struct {
		in      string
		want    []medications.Slot
		matched bool
	}{
		{"once daily", []medications.Slot{m}, true},
		{"QD", []medications.Slot{m}, true},
		{"Daily", []medications.Slot{m}, true},
		{"twice daily", []medications.Slot{m, e}, true},
		{"bid", []medications.Slot{m, e}, true},
		{"Three times daily", []medications.Slot{m, n, e}, true},
		{"TID", []medications.Slot{m, n, e}, true},
		{"four times daily", []medications.Slot{m, n, e, b}, true},
		{"QID", []medications.Slot{m, n, e, b}, true},
		{"at bedtime", []medications.Slot{b}, true},
		{"HS", []medications.Slot{b}, true},
		{"before sleep", []medications.Slot{b}, true},
		{"once daily at bedtime", []medications.Slot{b}, true},
		{"QHS", []medications.Slot{b}, true},
		{"nightly", []medications.Slot{b}, true},
		{"every night", []medications.Slot{b}, true},
		{"with meals", []medications.Slot{m, n, e}, true},
		{"as needed for pain", []medications.Slot{m}, false},
		{"", []medications.Slot{m}, false},
	}

	for _, tc := range cases {
		got, matched := ParseFrequency(tc.in)
		if !reflect.DeepEqual(got, tc.want) || matched != tc.matched {
			t.Fatalf("ParseFrequency(%q) = %v,%v want %v,%v", tc.in, got, matched, tc.want, tc.matched)
		}
	}
}

func TestParseFrequency_IsDeterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		got, _ := ParseFrequency("twice daily")
		if !reflect.DeepEqual(got, []medications.Slot{medications.SlotMorning, medications.SlotEvening}) {
			t.Fatalf("unexpected slots %v", got)
		}
	}
}
