package scheduling

import (
	"fmt"
	"time"
)

// SlotMinutes is the fixed appointment length offered by the clinic.
const SlotMinutes = 30

// clinicPlan is the weekly opening plan: a morning and an afternoon window
// Monday through Friday, nothing on the weekend.
var clinicPlan = weeklyPlan{
	Monday:    []dayWindow{{Start: clock{9, 0}, End: clock{12, 0}}, {Start: clock{14, 0}, End: clock{18, 0}}},
	Tuesday:   []dayWindow{{Start: clock{9, 0}, End: clock{12, 0}}, {Start: clock{14, 0}, End: clock{18, 0}}},
	Wednesday: []dayWindow{{Start: clock{9, 0}, End: clock{12, 0}}, {Start: clock{14, 0}, End: clock{18, 0}}},
	Thursday:  []dayWindow{{Start: clock{9, 0}, End: clock{12, 0}}, {Start: clock{14, 0}, End: clock{18, 0}}},
	Friday:    []dayWindow{{Start: clock{9, 0}, End: clock{12, 0}}, {Start: clock{14, 0}, End: clock{18, 0}}},
}

// IsWorkingDay reports whether the clinic opens at all on the given date.
func IsWorkingDay(date time.Time) bool {
	return len(clinicPlan.forWeekday(date.Weekday())) > 0
}

// SlotsForDate returns every slot start on the given date in HH:MM form,
// in window order. The result is empty on a closed day.
func SlotsForDate(date time.Time) []string {
	var out []string
	for _, w := range clinicPlan.forWeekday(date.Weekday()) {
		out = append(out, generateClocksBetween(w.Start, w.End, SlotMinutes)...)
	}
	return out
}

// IsValidSlot reports whether the clock string names a slot the clinic
// actually offers on the given date.
func IsValidSlot(date time.Time, clockStr string) bool {
	for _, s := range SlotsForDate(date) {
		if s == clockStr {
			return true
		}
	}
	return false
}

// generateClocksBetween walks from start to end in slotMinutes steps and
// emits every start whose full slot still fits before end.
func generateClocksBetween(start, end clock, slotMinutes int) []string {
	if slotMinutes <= 0 {
		return nil
	}
	startMin := start.H*60 + start.M
	endMin := end.H*60 + end.M

	var out []string
	for t := startMin; t+slotMinutes <= endMin; t += slotMinutes {
		out = append(out, fmt.Sprintf("%02d:%02d", t/60, t%60))
	}
	return out
}
