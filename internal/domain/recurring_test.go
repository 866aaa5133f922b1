package domain

import (
	"testing"
	"time"
)

func TestRecurringShouldTrigger(t *testing.T) {
	tests := []struct {
		name string
		rule RecurringRule
		now  time.Time
		want bool
	}{
		{
			name: "fires on the day",
			rule: RecurringRule{Active: true, DayOfMonth: 5, LastTriggeredAt: date(2024, time.February, 5)},
			now:  date(2024, time.March, 5),
			want: true,
		},
		{
			name: "fires late once when the day has passed",
			rule: RecurringRule{Active: true, DayOfMonth: 5, LastTriggeredAt: date(2024, time.January, 5)},
			now:  date(2024, time.March, 20),
			want: true,
		},
		{
			name: "never twice in the same month",
			rule: RecurringRule{Active: true, DayOfMonth: 5, LastTriggeredAt: date(2024, time.March, 5)},
			now:  date(2024, time.March, 25),
			want: false,
		},
		{
			name: "waits for the day",
			rule: RecurringRule{Active: true, DayOfMonth: 20, LastTriggeredAt: date(2024, time.February, 20)},
			now:  date(2024, time.March, 5),
			want: false,
		},
		{
			name: "inactive rule never fires",
			rule: RecurringRule{Active: false, DayOfMonth: 1},
			now:  date(2024, time.March, 25),
			want: false,
		},
		{
			name: "never-triggered rule fires",
			rule: RecurringRule{Active: true, DayOfMonth: 5},
			now:  date(2024, time.March, 6),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.ShouldTrigger(tt.now); got != tt.want {
				t.Errorf("ShouldTrigger(%s) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestValidateDayOfMonth(t *testing.T) {
	for _, day := range []int{1, 15, 28} {
		if err := ValidateDayOfMonth(day); err != nil {
			t.Errorf("ValidateDayOfMonth(%d) = %v, want nil", day, err)
		}
	}
	for _, day := range []int{0, 29, 31, -1} {
		if err := ValidateDayOfMonth(day); err != ErrInvalidDayOfMonth {
			t.Errorf("ValidateDayOfMonth(%d) = %v, want ErrInvalidDayOfMonth", day, err)
		}
	}
}
