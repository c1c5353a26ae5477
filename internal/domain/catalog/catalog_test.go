package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"med-reconciliation/internal/domain/medications"
)

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"  Vitamin-D3 ":     "vitamin d3",
		"ATORVASTATIN":      "atorvastatin",
		"Fish   Oil 1000mg": "fish oil 1000mg",
		"":                  "",
	}
	for in, want := range cases {
		if got := NormalizeName(in); got != want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIngredient_ResolvesBrandAliases(t *testing.T) {
	c := Default()

	if got := c.Ingredient("Lipitor"); got != "atorvastatin" {
		t.Fatalf("expected atorvastatin, got %q", got)
	}
	if got := c.Ingredient("Atorvastatin"); got != "atorvastatin" {
		t.Fatalf("expected atorvastatin, got %q", got)
	}
	if got := c.Ingredient("Advil Liqui-Gels"); got != "ibuprofen" {
		t.Fatalf("expected ibuprofen from first word, got %q", got)
	}
	if got := c.Ingredient("Unknownium"); got != "unknownium" {
		t.Fatalf("expected unknown names to stay normalized, got %q", got)
	}
}

func TestClassify_IsDeterministic(t *testing.T) {
	c := Default()

	cases := map[string]medications.Category{
		"Vitamin D3":   medications.CategoryOTC,
		"Tylenol":      medications.CategoryOTC,
		"Omega-3 Fish": medications.CategoryOTC,
		"Warfarin":     medications.CategoryRx,
		"Lipitor":      medications.CategoryRx,
		"Mystery pill": medications.CategoryRx,
	}
	for name, want := range cases {
		for i := 0; i < 3; i++ {
			if got := c.Classify(name); got != want {
				t.Fatalf("Classify(%q) = %s, want %s", name, got, want)
			}
		}
	}
}

func TestMatches_ByIngredientOrClass(t *testing.T) {
	c := Default()
	if !c.Matches("warfarin", "anticoagulant") {
		t.Fatalf("expected warfarin to match anticoagulant class")
	}
	if !c.Matches("simvastatin", "simvastatin") {
		t.Fatalf("expected direct ingredient match")
	}
	if c.Matches("metformin", "nsaid") {
		t.Fatalf("metformin is not an nsaid")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := []byte(`
aliases:
  Brandol: Genericine
otc:
  - genericine
classes:
  genericine: widgets
interactions:
  - a: widgets
    b: Gadgetol
    description: test interaction
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got := c.Ingredient("BRANDOL"); got != "genericine" {
		t.Fatalf("expected alias normalized, got %q", got)
	}
	if c.Classify("Brandol") != medications.CategoryOTC {
		t.Fatalf("expected OTC from yaml list")
	}
	if len(c.Interactions) != 1 || c.Interactions[0].B != "gadgetol" {
		t.Fatalf("unexpected interactions %#v", c.Interactions)
	}
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Interactions) == 0 {
		t.Fatalf("expected default interactions")
	}
}

func TestParse_RejectsEmptyCatalog(t *testing.T) {
	_, err := Parse([]byte("aliases: {}\n"))
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestClassify_SaltNamesFollowTheIngredient(t *testing.T) {
	c := Default()

	for _, name := range []string{"Atorvastatin Calcium", "Rosuvastatin Calcium", "Lipitor", "Atorvastatin"} {
		if got := c.Classify(name); got != medications.CategoryRx {
			t.Fatalf("Classify(%q) = %s, want Rx", name, got)
		}
	}
	if got := c.Ingredient("Atorvastatin Calcium"); got != "atorvastatin" {
		t.Fatalf("expected salt stripped, got %q", got)
	}
	if got := c.Classify("Calcium Carbonate 500mg"); got != medications.CategoryOTC {
		t.Fatalf("expected calcium carbonate OTC, got %s", got)
	}
}

func TestIngredient_StripsStrengthAndReleaseSuffix(t *testing.T) {
	c := Default()

	cases := map[string]string{
		"Acetaminophen 500mg":   "acetaminophen",
		"Metformin ER":          "metformin",
		"Metformin XR 500 mg":   "metformin",
		"Omeprazole DR 20mg":    "omeprazole",
		"Glucophage":            "metformin",
		"Fish Oil 1000mg":       "fish oil",
		"Vitamin D3 1000 IU":    "vitamin d3",
		"Potassium Chloride ER": "potassium chloride",
	}
	for in, want := range cases {
		if got := c.Ingredient(in); got != want {
			t.Fatalf("Ingredient(%q) = %q, want %q", in, got, want)
		}
	}
	if got := c.Classify("Acetaminophen 500mg"); got != c.Classify("Tylenol") {
		t.Fatalf("expected acetaminophen and tylenol in the same category, got %s", got)
	}
}
