package medications

import "strings"

// Origin guarda un candidato que terminó fusionado dentro de un Medication.
type Origin struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Source    Source `json:"source"`
}

// Medication es un fármaco o suplemento ya reconciliado.
type Medication struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Dosage       string   `json:"dosage"`
	Frequency    string   `json:"frequency"` // texto libre: "twice daily", "BID"
	Instructions string   `json:"instructions"`
	Source       Source   `json:"source"`
	Category     Category `json:"category"`
	Reasoning    string   `json:"reasoning,omitempty"`

	MergedFrom []Origin `json:"mergedFrom,omitempty"`
}

type NewInput struct {
	ID           string
	Name         string
	Dosage       string
	Frequency    string
	Instructions string
	Source       Source
	Category     Category
	Reasoning    string
}

// New construye un Medication validado.
func New(in NewInput) (Medication, error) {
	m := Medication{
		ID:           strings.TrimSpace(in.ID),
		Name:         strings.TrimSpace(in.Name),
		Dosage:       strings.TrimSpace(in.Dosage),
		Frequency:    strings.TrimSpace(in.Frequency),
		Instructions: strings.TrimSpace(in.Instructions),
		Source:       in.Source,
		Category:     in.Category,
		Reasoning:    strings.TrimSpace(in.Reasoning),
	}
	if err := m.Validate(); err != nil {
		return Medication{}, err
	}
	return m, nil
}

func (m Medication) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return invalid("id", "is required")
	}
	if strings.TrimSpace(m.Name) == "" {
		return invalid("name", "is required")
	}
	if !m.Source.Valid() {
		return invalid("source", "must be HOSPITAL or HOME")
	}
	if !m.Category.Valid() {
		return invalid("category", "must be OTC or Rx")
	}
	return nil
}

// Clone copia también MergedFrom.
func (m Medication) Clone() Medication {
	out := m
	if m.MergedFrom != nil {
		out.MergedFrom = append([]Origin(nil), m.MergedFrom...)
	}
	return out
}

// DailySchedule reparte ids de medicamentos en las cuatro franjas.
// Se espera que un id esté en una sola franja, pero se toleran duplicados.
type DailySchedule struct {
	Morning []string `json:"morning"`
	Noon    []string `json:"noon"`
	Evening []string `json:"evening"`
	Bedtime []string `json:"bedtime"`
}

func (s *DailySchedule) Get(slot Slot) []string {
	switch slot {
	case SlotMorning:
		return s.Morning
	case SlotNoon:
		return s.Noon
	case SlotEvening:
		return s.Evening
	case SlotBedtime:
		return s.Bedtime
	default:
		return nil
	}
}

func (s *DailySchedule) Set(slot Slot, ids []string) {
	switch slot {
	case SlotMorning:
		s.Morning = ids
	case SlotNoon:
		s.Noon = ids
	case SlotEvening:
		s.Evening = ids
	case SlotBedtime:
		s.Bedtime = ids
	}
}

// Add agrega id al final de la franja si todavía no está.
func (s *DailySchedule) Add(slot Slot, id string) {
	for _, v := range s.Get(slot) {
		if v == id {
			return
		}
	}
	s.Set(slot, append(s.Get(slot), id))
}

// Remove saca todas las apariciones de id en la franja.
func (s *DailySchedule) Remove(slot Slot, id string) {
	cur := s.Get(slot)
	out := make([]string, 0, len(cur))
	for _, v := range cur {
		if v != id {
			out = append(out, v)
		}
	}
	s.Set(slot, out)
}

// SlotsOf devuelve las franjas (en orden de día) que contienen id.
func (s *DailySchedule) SlotsOf(id string) []Slot {
	out := make([]Slot, 0, 1)
	for _, sl := range Slots {
		for _, v := range s.Get(sl) {
			if v == id {
				out = append(out, sl)
				break
			}
		}
	}
	return out
}

func (s DailySchedule) Clone() DailySchedule {
	return DailySchedule{
		Morning: cloneIDs(s.Morning),
		Noon:    cloneIDs(s.Noon),
		Evening: cloneIDs(s.Evening),
		Bedtime: cloneIDs(s.Bedtime),
	}
}

// Warning es un problema detectado (duplicado, interacción) ligado a ids.
type Warning struct {
	Description          string   `json:"description"`
	RelatedMedicationIDs []string `json:"relatedMedicationIds"`
}

func (w Warning) Clone() Warning {
	return Warning{
		Description:          w.Description,
		RelatedMedicationIDs: cloneIDs(w.RelatedMedicationIDs),
	}
}

func cloneIDs(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
