package history

import (
	"time"

	"med-reconciliation/internal/domain/medications"
)

// Record es la foto inmutable de un horario aprobado.
type Record struct {
	ID           string                     `json:"id"`
	PatientID    string                     `json:"patientId"`
	Date         time.Time                  `json:"date"`
	ScheduleName string                     `json:"scheduleName"`
	ApprovedBy   string                     `json:"approvedBy,omitempty"`
	Data         medications.AnalysisResult `json:"data"`
}

// Clone copia Data en profundidad; el store nunca comparte slices con el llamador.
func (r Record) Clone() Record {
	out := r
	out.Data = r.Data.Clone()
	return out
}
