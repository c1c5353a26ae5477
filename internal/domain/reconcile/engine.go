package reconcile

import (
	"fmt"
	"strings"

	"med-reconciliation/internal/domain/catalog"
	"med-reconciliation/internal/domain/medications"
	"med-reconciliation/internal/platform/logger"

	"github.com/google/uuid"
)

type Engine struct {
	catalog *catalog.Catalog
	log     logger.Logger
}

func NewEngine(c *catalog.Catalog, log logger.Logger) *Engine {
	if c == nil {
		c = catalog.Default()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{catalog: c, log: log}
}

// Reconcile fusiona candidatos en un set deduplicado, clasifica y arma el horario.
// Warnings queda vacío: lo llena el analyzer.
func (e *Engine) Reconcile(cands []Candidate) medications.AnalysisResult {
	out := medications.Empty()
	if len(cands) == 0 {
		return out
	}

	keys := make([]string, 0, len(cands))
	groups := make(map[string][]Candidate, len(cands))
	for i, c := range cands {
		if err := c.validate(); err != nil {
			e.log.Warn("candidate dropped", map[string]any{
				"index": i,
				"name":  c.Name,
				"error": err.Error(),
			})
			continue
		}
		key := e.catalog.Ingredient(c.Name)
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], c)
	}

	used := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		med, slots, err := e.merge(groups[key], used)
		if err != nil {
			e.log.Warn("merged medication dropped", map[string]any{
				"ingredient": key,
				"error":      err.Error(),
			})
			continue
		}
		used[med.ID] = struct{}{}
		out.Medications = append(out.Medications, med)
		for _, sl := range slots {
			out.Schedule.Add(sl, med.ID)
		}
	}

	e.log.Debug("reconciliation finished", map[string]any{
		"candidates":  len(cands),
		"medications": len(out.Medications),
	})
	return out
}

func (e *Engine) merge(group []Candidate, used map[string]struct{}) (medications.Medication, []medications.Slot, error) {
	auth := 0
	for i, c := range group {
		if c.Source == medications.SourceHospital {
			auth = i
			break
		}
	}
	a := group[auth]

	merged := a
	var notes []string
	if a.Reasoning != "" {
		notes = append(notes, a.Reasoning)
	}

	for i, o := range group {
		if i == auth {
			continue
		}
		if merged.Dosage == "" {
			merged.Dosage = o.Dosage
		} else if conflicts(o.Dosage, merged.Dosage) {
			notes = appendNote(notes, conflictNote(o.Source, o.Dosage, a.Source, merged.Dosage))
		}
		if merged.Frequency == "" {
			merged.Frequency = o.Frequency
		} else if conflicts(o.Frequency, merged.Frequency) {
			notes = appendNote(notes, conflictNote(o.Source, o.Frequency, a.Source, merged.Frequency))
		}
		if merged.Instructions == "" {
			merged.Instructions = o.Instructions
		}
	}

	slots, matched := ParseFrequency(merged.Frequency)
	if !matched {
		if merged.Frequency == "" {
			notes = append(notes, "no frequency given; defaulted to morning")
		} else {
			notes = append(notes, fmt.Sprintf("frequency %q not recognized; defaulted to morning", merged.Frequency))
		}
	}

	id := merged.ID
	if _, dup := used[id]; dup || id == "" {
		id = uuid.NewString()
	}

	med, err := medications.New(medications.NewInput{
		ID:           id,
		Name:         merged.Name,
		Dosage:       merged.Dosage,
		Frequency:    merged.Frequency,
		Instructions: merged.Instructions,
		Source:       merged.Source,
		Category:     e.catalog.Classify(merged.Name),
		Reasoning:    strings.Join(notes, ". "),
	})
	if err != nil {
		return medications.Medication{}, nil, err
	}

	if len(group) > 1 {
		med.MergedFrom = make([]medications.Origin, 0, len(group))
		for _, c := range group {
			med.MergedFrom = append(med.MergedFrom, medications.Origin{
				ID:        c.ID,
				Name:      c.Name,
				Dosage:    c.Dosage,
				Frequency: c.Frequency,
				Source:    c.Source,
			})
		}
	}
	return med, slots, nil
}

func (c Candidate) validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &medications.ValidationError{Field: "name", Reason: "is required"}
	}
	if !c.Source.Valid() {
		return &medications.ValidationError{Field: "source", Reason: "must be HOSPITAL or HOME"}
	}
	return nil
}

func conflicts(a, b string) bool {
	na, nb := catalog.NormalizeName(a), catalog.NormalizeName(b)
	return na != "" && nb != "" && na != nb
}

// "bottle says 10mg; discharge order 20mg used"
func conflictNote(lost medications.Source, lostValue string, won medications.Source, wonValue string) string {
	return fmt.Sprintf("%s says %s; %s %s used", sourceLabel(lost), lostValue, sourceLabel(won), wonValue)
}

func sourceLabel(s medications.Source) string {
	if s == medications.SourceHospital {
		return "discharge order"
	}
	return "bottle"
}

func appendNote(notes []string, n string) []string {
	for _, v := range notes {
		if v == n {
			return notes
		}
	}
	return append(notes, n)
}
