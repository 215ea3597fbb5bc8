package boutique

import "testing"

func TestMoney_String(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"12.50", "€12.50"},
		{"7", "€7.00"},
		{"0", "€0.00"},
		{"-3.5", "-€3.50"},
		{"1234.56", "€1,234.56"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			if got := M(dec(tt.amount)).String(); got != tt.want {
				t.Errorf("M(%s).String() = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestMoney_Add(t *testing.T) {
	sum := M(dec("1.10")).Add(M(dec("2.05")))
	if got := sum.String(); got != "€3.15" {
		t.Errorf("Add() = %q, want €3.15", got)
	}
	if M(dec("0")).IsZero() != true {
		t.Error("IsZero() on a zero amount = false")
	}
}
