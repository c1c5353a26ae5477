package medications

import "strings"

// AnalysisResult es la unidad de salida de la reconciliación, la unidad que se
// revisa y la que se congela en el historial.
type AnalysisResult struct {
	Medications []Medication  `json:"medications"`
	Schedule    DailySchedule `json:"schedule"`
	Warnings    []Warning     `json:"warnings"`
}

// ResolveMode indica cómo se resolvió una referencia.
type ResolveMode int

const (
	ResolvedNone ResolveMode = iota
	ResolvedByID
	ResolvedByName // degradado: solo si el nombre es único
)

// Empty devuelve un resultado sin medicamentos pero con arrays (no null en JSON).
func Empty() AnalysisResult {
	r := AnalysisResult{}
	r.Normalize()
	return r
}

// Normalize reemplaza slices nil por vacíos.
func (r *AnalysisResult) Normalize() {
	if r.Medications == nil {
		r.Medications = []Medication{}
	}
	if r.Warnings == nil {
		r.Warnings = []Warning{}
	}
	for _, sl := range Slots {
		if r.Schedule.Get(sl) == nil {
			r.Schedule.Set(sl, []string{})
		}
	}
	for i := range r.Warnings {
		if r.Warnings[i].RelatedMedicationIDs == nil {
			r.Warnings[i].RelatedMedicationIDs = []string{}
		}
	}
}

// Clone hace una copia profunda: ningún slice queda compartido.
func (r AnalysisResult) Clone() AnalysisResult {
	out := AnalysisResult{
		Medications: make([]Medication, 0, len(r.Medications)),
		Schedule:    r.Schedule.Clone(),
		Warnings:    make([]Warning, 0, len(r.Warnings)),
	}
	for _, m := range r.Medications {
		out.Medications = append(out.Medications, m.Clone())
	}
	for _, w := range r.Warnings {
		out.Warnings = append(out.Warnings, w.Clone())
	}
	return out
}

// Find busca por id exacto.
func (r *AnalysisResult) Find(id string) (*Medication, bool) {
	for i := range r.Medications {
		if r.Medications[i].ID == id {
			return &r.Medications[i], true
		}
	}
	return nil, false
}

// Resolve busca por id y, si no existe, por nombre visible (case-insensitive).
// El fallback por nombre solo aplica cuando exactamente un medicamento lo lleva.
func (r *AnalysisResult) Resolve(ref string) (Medication, ResolveMode) {
	if m, ok := r.Find(ref); ok {
		return *m, ResolvedByID
	}

	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Medication{}, ResolvedNone
	}

	var hit Medication
	hits := 0
	for _, m := range r.Medications {
		if strings.EqualFold(strings.TrimSpace(m.Name), ref) {
			hit = m
			hits++
		}
	}
	if hits == 1 {
		return hit, ResolvedByName
	}
	return Medication{}, ResolvedNone
}

// IDs devuelve los ids en orden de lista.
func (r AnalysisResult) IDs() []string {
	out := make([]string, 0, len(r.Medications))
	for _, m := range r.Medications {
		out = append(out, m.ID)
	}
	return out
}
