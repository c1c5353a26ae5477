package translation

import "context"

type Medication struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Instructions string `json:"instructions"`
	Reasoning    string `json:"reasoning,omitempty"`
}

type Warning struct {
	Description          string   `json:"description"`
	RelatedMedicationIDs []string `json:"relatedMedicationIds"`
}

type Request struct {
	Language    string            `json:"language"`
	Medications []Medication      `json:"medications"`
	Warnings    []Warning         `json:"warnings"`
	Labels      map[string]string `json:"labels"`
}

// Response debe conservar los ids de Request; el dominio lo verifica.
type Response struct {
	Medications []Medication      `json:"medications"`
	Warnings    []Warning         `json:"warnings"`
	Labels      map[string]string `json:"labels"`
}

// Translator traduce texto visible de un resultado a otro idioma.
type Translator interface {
	Translate(ctx context.Context, in Request) (Response, error)
}
