// Package interactions detecta duplicados de principio activo e interacciones
// conocidas en un set reconciliado. Es una ayuda a la revisión, no una garantía
// clínica: las tablas del catálogo son incompletas.
package interactions

import (
	"fmt"

	"med-reconciliation/internal/domain/catalog"
	"med-reconciliation/internal/domain/medications"
)

type Analyzer struct {
	catalog *catalog.Catalog
}

func NewAnalyzer(c *catalog.Catalog) *Analyzer {
	if c == nil {
		c = catalog.Default()
	}
	return &Analyzer{catalog: c}
}

// Analyze es determinístico: primero duplicados (en orden de detección),
// después interacciones (pares i<j por regla del catálogo).
func (a *Analyzer) Analyze(meds []medications.Medication) []medications.Warning {
	out := []medications.Warning{}

	ingredients := make([]string, len(meds))
	for i, m := range meds {
		ingredients[i] = a.catalog.Ingredient(m.Name)
	}

	for i, m := range meds {
		if spansBothSources(m.MergedFrom) {
			out = append(out, medications.Warning{
				Description:          fmt.Sprintf("%s appears in both the at-home supply and the discharge orders (at-home/discharge duplication); merged into one entry", m.Name),
				RelatedMedicationIDs: []string{m.ID},
			})
		}
		for j := i + 1; j < len(meds); j++ {
			o := meds[j]
			if ingredients[i] == "" || ingredients[i] != ingredients[j] || m.ID == o.ID {
				continue
			}
			out = append(out, medications.Warning{
				Description:          fmt.Sprintf("Possible duplicate therapy: %s and %s contain the same active ingredient (%s)", m.Name, o.Name, ingredients[i]),
				RelatedMedicationIDs: []string{m.ID, o.ID},
			})
		}
	}

	for i := 0; i < len(meds); i++ {
		for j := i + 1; j < len(meds); j++ {
			if meds[i].ID == meds[j].ID {
				continue
			}
			for _, r := range a.catalog.Interactions {
				if !a.pairMatches(ingredients[i], ingredients[j], r) {
					continue
				}
				out = append(out, medications.Warning{
					Description:          fmt.Sprintf("Interaction between %s and %s: %s", meds[i].Name, meds[j].Name, r.Description),
					RelatedMedicationIDs: []string{meds[i].ID, meds[j].ID},
				})
			}
		}
	}
	return out
}

func (a *Analyzer) pairMatches(x, y string, r catalog.InteractionRule) bool {
	return (a.catalog.Matches(x, r.A) && a.catalog.Matches(y, r.B)) ||
		(a.catalog.Matches(x, r.B) && a.catalog.Matches(y, r.A))
}

func spansBothSources(origins []medications.Origin) bool {
	var home, hospital bool
	for _, o := range origins {
		switch o.Source {
		case medications.SourceHome:
			home = true
		case medications.SourceHospital:
			hospital = true
		}
	}
	return home && hospital
}
