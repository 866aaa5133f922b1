package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCycleFor(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		startDay  int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "ref after start day",
			ref:       date(2024, time.March, 20),
			startDay:  5,
			wantStart: date(2024, time.March, 5),
			wantEnd:   date(2024, time.April, 5),
		},
		{
			name:      "ref before start day rolls back a month",
			ref:       date(2024, time.March, 3),
			startDay:  5,
			wantStart: date(2024, time.February, 5),
			wantEnd:   date(2024, time.March, 5),
		},
		{
			name:      "ref on start day",
			ref:       date(2024, time.March, 5),
			startDay:  5,
			wantStart: date(2024, time.March, 5),
			wantEnd:   date(2024, time.April, 5),
		},
		{
			name:      "january rolls back across year boundary",
			ref:       date(2024, time.January, 2),
			startDay:  10,
			wantStart: date(2023, time.December, 10),
			wantEnd:   date(2024, time.January, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CycleFor(tt.ref, tt.startDay)
			if !c.Start.Equal(tt.wantStart) || !c.End.Equal(tt.wantEnd) {
				t.Errorf("CycleFor(%s, %d) = [%s, %s), want [%s, %s)",
					tt.ref, tt.startDay, c.Start, c.End, tt.wantStart, tt.wantEnd)
			}
			if !c.Contains(tt.ref) {
				t.Errorf("cycle does not contain its reference date %s", tt.ref)
			}
		})
	}
}

func TestCyclePrevious(t *testing.T) {
	c := CycleFor(date(2024, time.March, 20), 5)
	prev := c.Previous()

	if !prev.End.Equal(c.Start) {
		t.Errorf("previous cycle end %s != current start %s", prev.End, c.Start)
	}
	if !prev.Start.Equal(date(2024, time.February, 5)) {
		t.Errorf("previous cycle start = %s, want 2024-02-05", prev.Start)
	}
	if prev.Contains(c.Start) {
		t.Error("previous cycle must not contain the current cycle start")
	}
}

func TestCycleBoundaries(t *testing.T) {
	c := CycleFor(date(2024, time.March, 20), 5)

	if !c.Contains(c.Start) {
		t.Error("cycle start must be inclusive")
	}
	if c.Contains(c.End) {
		t.Error("cycle end must be exclusive")
	}
}
