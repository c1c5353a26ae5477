// Package translation traduce el texto visible de un resultado usando el
// colaborador externo y verifica que los ids no cambien. Cualquier falla
// vuelve al idioma original sin bloquear aprobación ni exportación.
package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"med-reconciliation/internal/domain/medications"
	"med-reconciliation/internal/domain/report"
	"med-reconciliation/internal/platform/logger"
	porttr "med-reconciliation/internal/ports/translation"
)

var (
	ErrTranslationMismatch = errors.New("translation mismatch")
)

// View es lo que consume el reporte: contenido (traducido o no) + etiquetas.
type View struct {
	Language   string                     `json:"language"`
	Result     medications.AnalysisResult `json:"result"`
	Labels     report.Labels              `json:"labels"`
	Translated bool                       `json:"translated"`
}

type Service struct {
	translator porttr.Translator
	log        logger.Logger
}

// NewService acepta translator nil: en ese caso todo queda en el idioma original.
func NewService(t porttr.Translator, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{translator: t, log: log}
}

func (s *Service) Localize(ctx context.Context, res medications.AnalysisResult, language string) View {
	language = strings.TrimSpace(language)
	original := View{
		Language: "",
		Result:   res.Clone(),
		Labels:   report.DefaultLabels(),
	}
	if language == "" || s.translator == nil {
		return original
	}

	out, err := s.translator.Translate(ctx, buildRequest(res, language))
	if err != nil {
		s.log.Warn("translation failed, using original language", map[string]any{
			"language": language,
			"error":    err.Error(),
		})
		return original
	}

	translated, err := apply(res, out)
	if err != nil {
		s.log.Warn("translation discarded", map[string]any{
			"language": language,
			"error":    err.Error(),
		})
		return original
	}

	return View{
		Language:   language,
		Result:     translated,
		Labels:     report.DefaultLabels().Merge(out.Labels),
		Translated: true,
	}
}

func buildRequest(res medications.AnalysisResult, language string) porttr.Request {
	req := porttr.Request{
		Language:    language,
		Medications: make([]porttr.Medication, 0, len(res.Medications)),
		Warnings:    make([]porttr.Warning, 0, len(res.Warnings)),
		Labels:      report.DefaultLabels().Map(),
	}
	for _, m := range res.Medications {
		req.Medications = append(req.Medications, porttr.Medication{
			ID:           m.ID,
			Name:         m.Name,
			Dosage:       m.Dosage,
			Frequency:    m.Frequency,
			Instructions: m.Instructions,
			Reasoning:    m.Reasoning,
		})
	}
	for _, w := range res.Warnings {
		req.Warnings = append(req.Warnings, porttr.Warning{
			Description:          w.Description,
			RelatedMedicationIDs: append([]string(nil), w.RelatedMedicationIDs...),
		})
	}
	return req
}

// apply exige el mismo set de ids de medicamentos y warnings que solo
// referencien esos ids. Schedule, source y category no se traducen.
func apply(res medications.AnalysisResult, out porttr.Response) (medications.AnalysisResult, error) {
	if len(out.Medications) != len(res.Medications) {
		return medications.AnalysisResult{}, fmt.Errorf("%w: %d medications, expected %d",
			ErrTranslationMismatch, len(out.Medications), len(res.Medications))
	}

	byID := make(map[string]porttr.Medication, len(out.Medications))
	for _, m := range out.Medications {
		if _, dup := byID[m.ID]; dup {
			return medications.AnalysisResult{}, fmt.Errorf("%w: duplicate id %q", ErrTranslationMismatch, m.ID)
		}
		byID[m.ID] = m
	}

	translated := res.Clone()
	for i, m := range translated.Medications {
		tm, ok := byID[m.ID]
		if !ok {
			return medications.AnalysisResult{}, fmt.Errorf("%w: missing id %q", ErrTranslationMismatch, m.ID)
		}
		translated.Medications[i].Name = orDefault(tm.Name, m.Name)
		translated.Medications[i].Dosage = orDefault(tm.Dosage, m.Dosage)
		translated.Medications[i].Frequency = orDefault(tm.Frequency, m.Frequency)
		translated.Medications[i].Instructions = orDefault(tm.Instructions, m.Instructions)
		translated.Medications[i].Reasoning = orDefault(tm.Reasoning, m.Reasoning)
	}

	if len(out.Warnings) != len(res.Warnings) {
		return medications.AnalysisResult{}, fmt.Errorf("%w: %d warnings, expected %d",
			ErrTranslationMismatch, len(out.Warnings), len(res.Warnings))
	}
	for i, w := range out.Warnings {
		for _, id := range w.RelatedMedicationIDs {
			if _, ok := byID[id]; !ok {
				return medications.AnalysisResult{}, fmt.Errorf("%w: warning references unknown id %q", ErrTranslationMismatch, id)
			}
		}
		translated.Warnings[i].Description = orDefault(w.Description, res.Warnings[i].Description)
	}

	translated.Normalize()
	return translated, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
