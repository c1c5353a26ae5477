package medications

import (
	"errors"
	"testing"
)

func TestNew_RequiresIDAndName(t *testing.T) {
	_, err := New(NewInput{Name: "Aspirin", Source: SourceHome, Category: CategoryOTC})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing id, got %v", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "id" {
		t.Fatalf("expected ValidationError on id, got %#v", err)
	}

	_, err = New(NewInput{ID: "m1", Name: "  ", Source: SourceHome, Category: CategoryOTC})
	if !errors.As(err, &ve) || ve.Field != "name" {
		t.Fatalf("expected ValidationError on name, got %v", err)
	}
}

func TestNew_RejectsUnknownEnums(t *testing.T) {
	_, err := New(NewInput{ID: "m1", Name: "Aspirin", Source: Source("PHARMACY"), Category: CategoryOTC})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected invalid source to fail, got %v", err)
	}

	_, err = New(NewInput{ID: "m1", Name: "Aspirin", Source: SourceHome, Category: Category("herbal")})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected invalid category to fail, got %v", err)
	}

	m, err := New(NewInput{ID: " m1 ", Name: " Aspirin ", Source: SourceHome, Category: CategoryOTC})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID != "m1" || m.Name != "Aspirin" {
		t.Fatalf("expected trimmed fields, got %#v", m)
	}
}

func TestParseEnums(t *testing.T) {
	if s, ok := ParseSource("hospital"); !ok || s != SourceHospital {
		t.Fatalf("expected HOSPITAL, got %q %v", s, ok)
	}
	if c, ok := ParseCategory("RX"); !ok || c != CategoryRx {
		t.Fatalf("expected Rx, got %q %v", c, ok)
	}
	if _, ok := ParseSlot("lunch"); ok {
		t.Fatalf("expected lunch to be rejected")
	}
	if s, ok := ParseSlot(" Bedtime "); !ok || s != SlotBedtime {
		t.Fatalf("expected bedtime, got %q", s)
	}
}

func TestAnalysisResult_CloneIsIndependent(t *testing.T) {
	r := AnalysisResult{
		Medications: []Medication{{
			ID: "m1", Name: "Metformin", Source: SourceHospital, Category: CategoryRx,
			MergedFrom: []Origin{{ID: "c1", Name: "Glucophage", Source: SourceHome}},
		}},
		Schedule: DailySchedule{Morning: []string{"m1"}},
		Warnings: []Warning{{Description: "x", RelatedMedicationIDs: []string{"m1"}}},
	}

	c := r.Clone()
	c.Medications[0].Name = "changed"
	c.Medications[0].MergedFrom[0].Name = "changed"
	c.Schedule.Morning[0] = "changed"
	c.Warnings[0].RelatedMedicationIDs[0] = "changed"

	if r.Medications[0].Name != "Metformin" || r.Medications[0].MergedFrom[0].Name != "Glucophage" {
		t.Fatalf("medication aliased after clone: %#v", r.Medications[0])
	}
	if r.Schedule.Morning[0] != "m1" {
		t.Fatalf("schedule aliased after clone")
	}
	if r.Warnings[0].RelatedMedicationIDs[0] != "m1" {
		t.Fatalf("warning aliased after clone")
	}
}

func TestAnalysisResult_Resolve(t *testing.T) {
	r := AnalysisResult{Medications: []Medication{
		{ID: "m1", Name: "Lisinopril"},
		{ID: "m2", Name: "Vitamin D"},
		{ID: "m3", Name: "Vitamin D"},
	}}

	if m, mode := r.Resolve("m1"); mode != ResolvedByID || m.Name != "Lisinopril" {
		t.Fatalf("expected resolve by id, got %v %#v", mode, m)
	}
	if m, mode := r.Resolve("lisinopril"); mode != ResolvedByName || m.ID != "m1" {
		t.Fatalf("expected degraded resolve by name, got %v %#v", mode, m)
	}
	// nombre ambiguo: no se resuelve
	if _, mode := r.Resolve("Vitamin D"); mode != ResolvedNone {
		t.Fatalf("expected ambiguous name to stay unresolved, got %v", mode)
	}
}

func TestDailySchedule_AddRemoveSlotsOf(t *testing.T) {
	var s DailySchedule
	s.Add(SlotMorning, "m1")
	s.Add(SlotMorning, "m1")
	s.Add(SlotEvening, "m1")

	if len(s.Morning) != 1 {
		t.Fatalf("expected no duplicate in morning, got %v", s.Morning)
	}
	got := s.SlotsOf("m1")
	if len(got) != 2 || got[0] != SlotMorning || got[1] != SlotEvening {
		t.Fatalf("unexpected slots %v", got)
	}

	s.Remove(SlotMorning, "m1")
	s.Remove(SlotMorning, "m1")
	if len(s.Morning) != 0 {
		t.Fatalf("expected m1 removed from morning, got %v", s.Morning)
	}
}

func TestEmpty_HasArrays(t *testing.T) {
	r := Empty()
	if r.Medications == nil || r.Warnings == nil || r.Schedule.Bedtime == nil {
		t.Fatalf("expected non-nil slices, got %#v", r)
	}
}
