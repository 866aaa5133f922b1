package main

import (
	"strings"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"1234.50", "USD", "$1,234.50"},
		{"0", "USD", "$0.00"},
		{"-45.99", "USD", "-$45.99"},
		{"not-a-number", "USD", "not-a-number"},
	}

	for _, tt := range tests {
		if got := formatMoney(tt.amount, tt.currency); got != tt.want {
			t.Errorf("formatMoney(%q, %q) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestInsightMarkdown(t *testing.T) {
	report := &insightReport{
		Score:           72,
		Messages:        []string{"Spending is up 20% over last cycle"},
		CycleStart:      "2026-08-01T00:00:00Z",
		CycleEnd:        "2026-09-01T00:00:00Z",
		CurrentExpense:  "840.25",
		PreviousExpense: "700.00",
	}

	md := insightMarkdown(report, "USD")

	for _, want := range []string{
		"# Spending Health: 72/100",
		"2026-08-01",
		"$840.25",
		"$700.00",
		"Spending is up 20% over last cycle",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestShortDateFallsBackOnBadInput(t *testing.T) {
	if got := shortDate("yesterday"); got != "yesterday" {
		t.Errorf("shortDate = %q, want input passthrough", got)
	}
}
