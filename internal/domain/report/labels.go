package report

// Labels son los textos fijos del reporte. El colaborador de traducción
// devuelve el mismo set de claves.
type Labels struct {
	ReportTitle         string `json:"reportTitle"`
	ReportSubtitle      string `json:"reportSubtitle"`
	ScheduleNameLabel   string `json:"scheduleNameLabel"`
	DateLabel           string `json:"dateLabel"`
	ClinicalAlertsTitle string `json:"clinicalAlertsTitle"`
	Morning             string `json:"morning"`
	MorningTime         string `json:"morningTime"`
	Noon                string `json:"noon"`
	NoonTime            string `json:"noonTime"`
	Evening             string `json:"evening"`
	EveningTime         string `json:"eveningTime"`
	Night               string `json:"night"`
	NightTime           string `json:"nightTime"`
	TableMedication     string `json:"tableMedication"`
	TableType           string `json:"tableType"`
	TableInstructions   string `json:"tableInstructions"`
	TableAdministered   string `json:"tableAdministered"`
	EmptySlot           string `json:"emptySlot"`
	Disclaimer          string `json:"disclaimer"`
	Signature           string `json:"signature"`
	LabelOTC            string `json:"labelOTC"`
	LabelRx             string `json:"labelRx"`
}

func DefaultLabels() Labels {
	return Labels{
		ReportTitle:         "MediVision",
		ReportSubtitle:      "Medication Reconciliation Report",
		ScheduleNameLabel:   "Schedule Name",
		DateLabel:           "Date",
		ClinicalAlertsTitle: "Clinical Alerts Detected",
		Morning:             "Morning",
		MorningTime:         "Take between 7:00 AM - 9:00 AM",
		Noon:                "Noon",
		NoonTime:            "Take between 11:00 AM - 1:00 PM",
		Evening:             "Evening",
		EveningTime:         "Take between 5:00 PM - 7:00 PM",
		Night:               "Bedtime",
		NightTime:           "Take before sleeping",
		TableMedication:     "Medication",
		TableType:           "Type",
		TableInstructions:   "Instructions",
		TableAdministered:   "Administered",
		EmptySlot:           "No medications scheduled.",
		Disclaimer:          "Disclaimer: This schedule was generated from the provided documents and reviewed by a clinician. Interaction and duplicate checks are a decision-support aid, not a safety guarantee. Always verify with your primary care physician before making changes to your regimen.",
		Signature:           "Physician Signature",
		LabelOTC:            "OTC",
		LabelRx:             "Rx",
	}
}

// Map expone las etiquetas por clave JSON (request de traducción).
func (l Labels) Map() map[string]string {
	return map[string]string{
		"reportTitle":         l.ReportTitle,
		"reportSubtitle":      l.ReportSubtitle,
		"scheduleNameLabel":   l.ScheduleNameLabel,
		"dateLabel":           l.DateLabel,
		"clinicalAlertsTitle": l.ClinicalAlertsTitle,
		"morning":             l.Morning,
		"morningTime":         l.MorningTime,
		"noon":                l.Noon,
		"noonTime":            l.NoonTime,
		"evening":             l.Evening,
		"eveningTime":         l.EveningTime,
		"night":               l.Night,
		"nightTime":           l.NightTime,
		"tableMedication":     l.TableMedication,
		"tableType":           l.TableType,
		"tableInstructions":   l.TableInstructions,
		"tableAdministered":   l.TableAdministered,
		"emptySlot":           l.EmptySlot,
		"disclaimer":          l.Disclaimer,
		"signature":           l.Signature,
		"labelOTC":            l.LabelOTC,
		"labelRx":             l.LabelRx,
	}
}

// Merge toma los valores no vacíos de m; las claves ausentes quedan con l.
func (l Labels) Merge(m map[string]string) Labels {
	set := func(dst *string, key string) {
		if v, ok := m[key]; ok && v != "" {
			*dst = v
		}
	}
	set(&l.ReportTitle, "reportTitle")
	set(&l.ReportSubtitle, "reportSubtitle")
	set(&l.ScheduleNameLabel, "scheduleNameLabel")
	set(&l.DateLabel, "dateLabel")
	set(&l.ClinicalAlertsTitle, "clinicalAlertsTitle")
	set(&l.Morning, "morning")
	set(&l.MorningTime, "morningTime")
	set(&l.Noon, "noon")
	set(&l.NoonTime, "noonTime")
	set(&l.Evening, "evening")
	set(&l.EveningTime, "eveningTime")
	set(&l.Night, "night")
	set(&l.NightTime, "nightTime")
	set(&l.TableMedication, "tableMedication")
	set(&l.TableType, "tableType")
	set(&l.TableInstructions, "tableInstructions")
	set(&l.TableAdministered, "tableAdministered")
	set(&l.EmptySlot, "emptySlot")
	set(&l.Disclaimer, "disclaimer")
	set(&l.Signature, "signature")
	set(&l.LabelOTC, "labelOTC")
	set(&l.LabelRx, "labelRx")
	return l
}
