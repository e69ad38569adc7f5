package schedule_test

import (
	"testing"

	"studio/shared/schedule"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 string
		expected       bool
	}{
		{name: "identical intervals", s1: "13:00", e1: "14:00", s2: "13:00", e2: "14:00", expected: true},
		{name: "partial overlap", s1: "13:00", e1: "14:30", s2: "14:00", e2: "15:00", expected: true},
		{name: "containment", s1: "13:00", e1: "16:00", s2: "14:00", e2: "15:00", expected: true},
		{name: "back to back", s1: "13:00", e1: "14:00", s2: "14:00", e2: "15:00", expected: false},
		{name: "disjoint", s1: "09:00", e1: "10:00", s2: "14:00", e2: "15:00", expected: false},
	}

	parse := func(t *testing.T, v string) int {
		t.Helper()

		minute, err := schedule.ParseClock(v)
		if err != nil {
			t.Fatalf("ParseClock(%q) failed: %v", v, err)
		}

		return minute
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s1, e1 := parse(t, tt.s1), parse(t, tt.e1)
			s2, e2 := parse(t, tt.s2), parse(t, tt.e2)

			if got := schedule.Overlaps(s1, e1, s2, e2); got != tt.expected {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, expected %v", tt.s1, tt.e1, tt.s2, tt.e2, got, tt.expected)
			}

			// the relation is symmetric
			if got := schedule.Overlaps(s2, e2, s1, e1); got != tt.expected {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, expected %v", tt.s2, tt.e2, tt.s1, tt.e1, got, tt.expected)
			}
		})
	}
}

func TestConflicts(t *testing.T) {
	existing := []schedule.Interval{
		{Start: "13:00", End: "14:00"},
		{Start: "16:00", End: "18:00"},
	}

	tests := []struct {
		name       string
		start, end string
		expected   bool
	}{
		{name: "free morning slot", start: "09:00", end: "10:30", expected: false},
		{name: "ends where a booking starts", start: "12:00", end: "13:00", expected: false},
		{name: "starts where a booking ends", start: "14:00", end: "15:00", expected: false},
		{name: "covers an existing booking", start: "12:30", end: "14:30", expected: true},
		{name: "inside an existing booking", start: "16:30", end: "17:00", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schedule.Conflicts(tt.start, tt.end, existing)
			if err != nil {
				t.Fatalf("Conflicts(%s, %s) failed: %v", tt.start, tt.end, err)
			}

			if got != tt.expected {
				t.Errorf("Conflicts(%s, %s) = %v, expected %v", tt.start, tt.end, got, tt.expected)
			}
		})
	}
}

func TestConflicts_InvalidInterval(t *testing.T) {
	if _, err := schedule.Conflicts("14:00", "13:00", nil); err == nil {
		t.Error("expected error for end before start")
	}

	if _, err := schedule.Conflicts("13:00", "13:00", nil); err == nil {
		t.Error("expected error for zero-length interval")
	}

	if _, err := schedule.Conflicts("25:00", "26:00", nil); err == nil {
		t.Error("expected error for out-of-range clock")
	}
}

func TestSlots(t *testing.T) {
	slots := schedule.Slots(9, 22, 30)

	if len(slots) != 27 {
		t.Fatalf("expected 27 slots, got %d", len(slots))
	}

	if slots[0] != "09:00" {
		t.Errorf("expected first slot 09:00, got %s", slots[0])
	}

	if slots[len(slots)-1] != "22:00" {
		t.Errorf("expected last slot 22:00, got %s", slots[len(slots)-1])
	}

	for i := 1; i < len(slots); i++ {
		if slots[i] <= slots[i-1] {
			t.Errorf("slots not strictly increasing at %d: %s <= %s", i, slots[i], slots[i-1])
		}
	}
}

func TestSlots_Degenerate(t *testing.T) {
	if slots := schedule.Slots(9, 22, 0); slots != nil {
		t.Errorf("expected nil for zero step, got %v", slots)
	}

	if slots := schedule.Slots(22, 9, 30); slots != nil {
		t.Errorf("expected nil for close before open, got %v", slots)
	}

	slots := schedule.Slots(9, 9, 30)
	if len(slots) != 1 || slots[0] != "09:00" {
		t.Errorf("expected single 09:00 slot, got %v", slots)
	}
}

func TestAvailableStarts(t *testing.T) {
	slots := schedule.Slots(9, 22, 30)
	existing := []schedule.Interval{{Start: "13:00", End: "14:00"}}

	starts := schedule.AvailableStarts(slots, existing)

	contains := func(values []string, v string) bool {
		for _, value := range values {
			if value == v {
				return true
			}
		}

		return false
	}

	for _, taken := range []string{"13:00", "13:30"} {
		if contains(starts, taken) {
			t.Errorf("expected %s to be unavailable as a start", taken)
		}
	}

	for _, free := range []string{"12:30", "14:00"} {
		if !contains(starts, free) {
			t.Errorf("expected %s to be available as a start", free)
		}
	}

	if len(starts) != len(slots)-2 {
		t.Errorf("expected %d available starts, got %d", len(slots)-2, len(starts))
	}
}

func TestAvailableEnds(t *testing.T) {
	slots := schedule.Slots(9, 22, 30)
	existing := []schedule.Interval{{Start: "13:00", End: "14:00"}}

	ends := schedule.AvailableEnds(slots, "12:00", existing)

	contains := func(values []string, v string) bool {
		for _, value := range values {
			if value == v {
				return true
			}
		}

		return false
	}

	for _, slot := range ends {
		if slot <= "12:00" {
			t.Errorf("end %s is not after chosen start", slot)
		}
	}

	// 13:00 closes a booking exactly where the existing one begins
	if !contains(ends, "13:00") {
		t.Error("expected 13:00 to be a valid end")
	}

	// 13:30 and 14:00 land inside the existing booking; anything later would
	// have to run through it.
	for _, blocked := range []string{"13:30", "14:00", "14:30", "22:00"} {
		if contains(ends, blocked) {
			t.Errorf("expected %s to be blocked as an end", blocked)
		}
	}

	if contains(ends, "12:00") {
		t.Error("chosen start must not appear among ends")
	}
}

func TestAvailableEnds_InvalidStart(t *testing.T) {
	if ends := schedule.AvailableEnds(schedule.Slots(9, 22, 30), "nonsense", nil); ends != nil {
		t.Errorf("expected nil for unparseable start, got %v", ends)
	}
}

func TestDerivedEnd(t *testing.T) {
	end, err := schedule.DerivedEnd("13:00", 60)
	if err != nil {
		t.Fatalf("DerivedEnd failed: %v", err)
	}

	if end != "14:00" {
		t.Errorf("expected 14:00, got %s", end)
	}

	end, err = schedule.DerivedEnd("13:30", 45)
	if err != nil {
		t.Fatalf("DerivedEnd failed: %v", err)
	}

	if end != "14:15" {
		t.Errorf("expected 14:15, got %s", end)
	}

	if _, err = schedule.DerivedEnd("23:30", 60); err == nil {
		t.Error("expected error past end of day")
	}

	if _, err = schedule.DerivedEnd("13:00", 0); err == nil {
		t.Error("expected error for non-positive duration")
	}
}

func TestHours(t *testing.T) {
	hours, err := schedule.Hours("13:00", "14:30")
	if err != nil {
		t.Fatalf("Hours failed: %v", err)
	}

	if hours != 1.5 {
		t.Errorf("expected 1.5, got %f", hours)
	}

	if _, err = schedule.Hours("14:00", "14:00"); err == nil {
		t.Error("expected error for zero-length interval")
	}
}

func TestFormatClock(t *testing.T) {
	for value, expected := range map[int]string{
		540:  "09:00",
		810:  "13:30",
		1320: "22:00",
		0:    "00:00",
	} {
		if got := schedule.FormatClock(value); got != expected {
			t.Errorf("FormatClock(%d) = %s, expected %s", value, got, expected)
		}
	}
}
