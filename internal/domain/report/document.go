// Package report arma el contenido del reporte imprimible de un horario:
// encabezado, alertas, cuatro franjas con tablas y pie con firma.
// El rasterizado a PDF queda fuera; RenderHTML da una versión lista para imprimir.
package report

import (
	"time"

	"med-reconciliation/internal/domain/medications"
)

type Document struct {
	Header   Header    `json:"header"`
	Alerts   *Alerts   `json:"alerts,omitempty"`
	Sections []Section `json:"sections"`
	Footer   Footer    `json:"footer"`
	Columns  Columns   `json:"columns"`
}

type Header struct {
	Title             string    `json:"title"`
	Subtitle          string    `json:"subtitle"`
	DateLabel         string    `json:"dateLabel"`
	Date              time.Time `json:"date"`
	ScheduleNameLabel string    `json:"scheduleNameLabel"`
	ScheduleName      string    `json:"scheduleName"`
}

type Alerts struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type Columns struct {
	Medication   string `json:"medication"`
	Type         string `json:"type"`
	Instructions string `json:"instructions"`
	Administered string `json:"administered"`
}

type Section struct {
	Slot      medications.Slot `json:"slot"`
	Label     string           `json:"label"`
	TimeHint  string           `json:"timeHint"`
	Rows      []Row            `json:"rows"`
	EmptyText string           `json:"emptyText,omitempty"`
}

type Row struct {
	Ref          string `json:"ref"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Category     string `json:"category"`
	Instructions string `json:"instructions"`
	Administered bool   `json:"administered"`
	Resolved     bool   `json:"resolved"`
}

type Footer struct {
	Disclaimer     string `json:"disclaimer"`
	SignatureLabel string `json:"signatureLabel"`
}

// Build arma el documento. Referencias de franja que no resuelven se muestran
// literalmente con categoría "--".
func Build(res medications.AnalysisResult, scheduleName string, date time.Time, l Labels) Document {
	doc := Document{
		Header: Header{
			Title:             l.ReportTitle,
			Subtitle:          l.ReportSubtitle,
			DateLabel:         l.DateLabel,
			Date:              date,
			ScheduleNameLabel: l.ScheduleNameLabel,
			ScheduleName:      scheduleName,
		},
		Columns: Columns{
			Medication:   l.TableMedication,
			Type:         l.TableType,
			Instructions: l.TableInstructions,
			Administered: l.TableAdministered,
		},
		Footer: Footer{
			Disclaimer:     l.Disclaimer,
			SignatureLabel: l.Signature,
		},
	}

	if len(res.Warnings) > 0 {
		a := &Alerts{Title: l.ClinicalAlertsTitle, Items: make([]string, 0, len(res.Warnings))}
		for _, w := range res.Warnings {
			a.Items = append(a.Items, w.Description)
		}
		doc.Alerts = a
	}

	doc.Sections = make([]Section, 0, len(medications.Slots))
	for _, sl := range medications.Slots {
		label, hint := slotText(sl, l)
		sec := Section{Slot: sl, Label: label, TimeHint: hint, Rows: []Row{}}
		for _, ref := range res.Schedule.Get(sl) {
			sec.Rows = append(sec.Rows, buildRow(&res, ref, l))
		}
		if len(sec.Rows) == 0 {
			sec.EmptyText = l.EmptySlot
		}
		doc.Sections = append(doc.Sections, sec)
	}
	return doc
}

func buildRow(res *medications.AnalysisResult, ref string, l Labels) Row {
	m, mode := res.Resolve(ref)
	if mode == medications.ResolvedNone {
		return Row{Ref: ref, Name: ref, Category: "--"}
	}
	instr := m.Instructions
	if instr == "" {
		instr = m.Frequency
	}
	cat := l.LabelRx
	if m.Category == medications.CategoryOTC {
		cat = l.LabelOTC
	}
	return Row{
		Ref:          ref,
		Name:         m.Name,
		Dosage:       m.Dosage,
		Category:     cat,
		Instructions: instr,
		Resolved:     true,
	}
}

func slotText(sl medications.Slot, l Labels) (string, string) {
	switch sl {
	case medications.SlotMorning:
		return l.Morning, l.MorningTime
	case medications.SlotNoon:
		return l.Noon, l.NoonTime
	case medications.SlotEvening:
		return l.Evening, l.EveningTime
	default:
		return l.Night, l.NightTime
	}
}
