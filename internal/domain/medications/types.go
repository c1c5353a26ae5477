package medications

import "strings"

// Source indica de dónde salió el medicamento (provenance).
// @Enum HOSPITAL, HOME
type Source string

const (
	SourceHospital Source = "HOSPITAL" // epicrisis / indicaciones de alta
	SourceHome     Source = "HOME"     // frascos en casa
)

// Category clasifica venta libre vs receta.
// @Enum OTC, Rx
type Category string

const (
	CategoryOTC Category = "OTC"
	CategoryRx  Category = "Rx"
)

// Slot es una de las cuatro ventanas fijas de administración del día.
// @Enum morning, noon, evening, bedtime
type Slot string

const (
	SlotMorning Slot = "morning"
	SlotNoon    Slot = "noon"
	SlotEvening Slot = "evening"
	SlotBedtime Slot = "bedtime"
)

// Slots en orden de día.
var Slots = []Slot{SlotMorning, SlotNoon, SlotEvening, SlotBedtime}

func ParseSource(s string) (Source, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(SourceHospital):
		return SourceHospital, true
	case string(SourceHome):
		return SourceHome, true
	default:
		return "", false
	}
}

func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "otc":
		return CategoryOTC, true
	case "rx":
		return CategoryRx, true
	default:
		return "", false
	}
}

func ParseSlot(s string) (Slot, bool) {
	v := Slot(strings.ToLower(strings.TrimSpace(s)))
	for _, sl := range Slots {
		if sl == v {
			return sl, true
		}
	}
	return "", false
}

func (s Source) Valid() bool {
	return s == SourceHospital || s == SourceHome
}

func (c Category) Valid() bool {
	return c == CategoryOTC || c == CategoryRx
}

func (s Slot) Valid() bool {
	for _, sl := range Slots {
		if sl == s {
			return true
		}
	}
	return false
}
