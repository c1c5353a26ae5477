package reconcile

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"med-reconciliation/internal/domain/medications"
	"med-reconciliation/internal/platform/logger"
	"med-reconciliation/internal/ports/extraction"

	"github.com/google/uuid"
)

var (
	ErrExtractionFailed = errors.New("extraction failed")
)

// Candidate es un medicamento crudo extraído de una imagen, antes de fusionar.
type Candidate struct {
	ID           string
	Name         string
	Dosage       string
	Frequency    string
	Instructions string
	Source       medications.Source
	Reasoning    string
}

// DecodeExtraction valida el JSON del colaborador OCR en el borde.
// JSON inválido o sin "medications" => ErrExtractionFailed (se reintenta con
// las mismas imágenes). Una lista vacía es válida.
func DecodeExtraction(raw []byte) (extraction.Response, error) {
	var resp extraction.Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return extraction.Response{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	if resp.Medications == nil {
		return extraction.Response{}, fmt.Errorf("%w: response has no medications list", ErrExtractionFailed)
	}
	return resp, nil
}

// UploadSource devuelve el source común de las imágenes, o "" si alguna no
// está etiquetada o no coinciden.
func UploadSource(images []extraction.Image) medications.Source {
	var common medications.Source
	for _, img := range images {
		src, ok := medications.ParseSource(img.Source)
		if !ok {
			return ""
		}
		if common != "" && src != common {
			return ""
		}
		common = src
	}
	return common
}

// FromExtraction repara o descarta registros que no cumplen el esquema.
// - sin id: se asigna uno nuevo
// - source ausente o inválido: se usa fallback si es válido, si no se descarta
// - sin nombre: se descarta y se loguea
// schedule y warnings del colaborador se ignoran: el engine y el analyzer mandan.
func FromExtraction(resp extraction.Response, fallback medications.Source, log logger.Logger) []Candidate {
	if log == nil {
		log = logger.Nop()
	}

	out := make([]Candidate, 0, len(resp.Medications))
	for i, m := range resp.Medications {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			log.Warn("extraction candidate dropped", map[string]any{
				"index":  i,
				"reason": "missing name",
			})
			continue
		}

		src, ok := medications.ParseSource(m.Source)
		if !ok && fallback.Valid() {
			log.Debug("extraction candidate source repaired", map[string]any{
				"index":  i,
				"name":   name,
				"source": string(fallback),
			})
			src, ok = fallback, true
		}
		if !ok {
			log.Warn("extraction candidate dropped", map[string]any{
				"index":  i,
				"name":   name,
				"reason": fmt.Sprintf("invalid source %q", m.Source),
			})
			continue
		}

		id := strings.TrimSpace(m.ID)
		if id == "" {
			id = uuid.NewString()
			log.Debug("extraction candidate id repaired", map[string]any{"index": i, "id": id})
		}

		out = append(out, Candidate{
			ID:           id,
			Name:         name,
			Dosage:       strings.TrimSpace(m.Dosage),
			Frequency:    strings.TrimSpace(m.Frequency),
			Instructions: strings.TrimSpace(m.Instructions),
			Source:       src,
			Reasoning:    strings.TrimSpace(m.Reasoning),
		})
	}
	return out
}
