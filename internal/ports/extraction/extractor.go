package extraction

import "context"

// Image es un archivo subido (foto de frasco o epicrisis).
type Image struct {
	Data     []byte
	MimeType string

	// Source opcional: HOSPITAL (epicrisis) o HOME (frasco). Si todas las
	// imágenes coinciden se usa para reparar candidatos sin source.
	Source string
}

// Medication tal como lo devuelve el colaborador: texto sin validar.
type Medication struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Instructions string `json:"instructions"`
	Source       string `json:"source"`
	Category     string `json:"category"`
	Reasoning    string `json:"reasoning"`
}

type Warning struct {
	Description          string   `json:"description"`
	RelatedMedicationIDs []string `json:"relatedMedicationIds"`
}

// Response tiene la forma de un AnalysisResult, pero nada está garantizado.
type Response struct {
	Medications []Medication        `json:"medications"`
	Schedule    map[string][]string `json:"schedule"`
	Warnings    []Warning           `json:"warnings"`
}

// Extractor extrae candidatos de medicamentos a partir de imágenes.
type Extractor interface {
	Extract(ctx context.Context, images []Image) (Response, error)
}
