package reconcile

import (
	"regexp"
	"strings"

	"med-reconciliation/internal/domain/medications"
)

type frequencyRule struct {
	pattern *regexp.Regexp
	slots   []medications.Slot
}

// El orden importa: "four times daily" contiene "daily" y
// "once daily at bedtime" debe caer en bedtime.
var frequencyRules = []frequencyRule{
	{
		pattern: regexp.MustCompile(`\b(four times|4 times|qid|q\.i\.d|every 6 hours|q6h)\b`),
		slots:   []medications.Slot{medications.SlotMorning, medications.SlotNoon, medications.SlotEvening, medications.SlotBedtime},
	},
	{
		pattern: regexp.MustCompile(`\b(three times|3 times|tid|t\.i\.d|every 8 hours|q8h)\b`),
		slots:   []medications.Slot{medications.SlotMorning, medications.SlotNoon, medications.SlotEvening},
	},
	{
		pattern: regexp.MustCompile(`\b(twice|two times|2 times|bid|b\.i\.d|every 12 hours|q12h)\b`),
		slots:   []medications.Slot{medications.SlotMorning, medications.SlotEvening},
	},
	{
		pattern: regexp.MustCompile(`\b(at bedtime|bedtime|hs|h\.s|qhs|q\.h\.s|nightly|every night|before sleep|before sleeping|at night)\b`),
		slots:   []medications.Slot{medications.SlotBedtime},
	},
	{
		pattern: regexp.MustCompile(`\b(once daily|once a day|one time daily|qd|q\.d|every 24 hours)\b`),
		slots:   []medications.Slot{medications.SlotMorning},
	},
	{
		pattern: regexp.MustCompile(`\bwith meals\b`),
		slots:   []medications.Slot{medications.SlotMorning, medications.SlotNoon, medications.SlotEvening},
	},
	{
		pattern: regexp.MustCompile(`\b(daily|every day|every morning)\b`),
		slots:   []medications.Slot{medications.SlotMorning},
	},
}

// ParseFrequency mapea texto libre a franjas. matched=false => default morning.
func ParseFrequency(text string) (slots []medications.Slot, matched bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t != "" {
		for _, r := range frequencyRules {
			if r.pattern.MatchString(t) {
				return append([]medications.Slot(nil), r.slots...), true
			}
		}
	}
	return []medications.Slot{medications.SlotMorning}, false
}
