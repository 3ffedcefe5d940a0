package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	if m.String() != "12.35" {
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}

	if got := NewMoneyFromInt(50000).String(); got != "50000.00" {
		t.Fatalf("NewMoneyFromInt got %s", got)
	}

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := NewMoneyFromString("123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.String() != "123.45" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m3.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestRounding(t *testing.T) {
	cases := []struct{ in, out string }{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"2.355", "2.36"},
		{"-2.345", "-2.35"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		got := m.Round().String()
		if got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestArithmeticAndComparisons(t *testing.T) {
	a := NewMoneyFromInt(100)
	b := NewMoney(40.5)

	if got := a.Sub(b).String(); got != "59.50" {
		t.Fatalf("Sub got %s", got)
	}
	if got := a.Add(b).String(); got != "140.50" {
		t.Fatalf("Add got %s", got)
	}
	if got := a.Mul(stddec.NewFromFloat(0.01)).String(); got != "1.00" {
		t.Fatalf("Mul got %s", got)
	}
	if got := a.Div(stddec.NewFromInt(3)).Round().String(); got != "33.33" {
		t.Fatalf("Div got %s", got)
	}
	if !Min(a, b).Equal(b) || !Max(a, b).Equal(a) {
		t.Fatalf("Min/Max mismatch")
	}
	if !Zero().IsZero() {
		t.Fatalf("Zero should be zero")
	}
}

func TestFloatHelpers(t *testing.T) {
	if got := NewMoney(1234.5678).Float64(); got != 1234.57 {
		t.Fatalf("Float64 got %v", got)
	}
	if got := RoundFloat(2.675, 2); got != 2.68 {
		t.Fatalf("RoundFloat got %v", got)
	}
	if got := RoundFloat(0.12345, 3); got != 0.123 {
		t.Fatalf("RoundFloat(3) got %v", got)
	}
}

func TestComparisons(t *testing.T) {
	small, large := NewMoney(10), NewMoney(10.01)
	if !large.GreaterThan(small) || small.GreaterThan(large) {
		t.Fatalf("GreaterThan mismatch")
	}
	if !small.LessThan(large) || large.LessThan(small) {
		t.Fatalf("LessThan mismatch")
	}
	if !small.Equal(NewMoneyFromInt(10)) || small.Equal(large) {
		t.Fatalf("Equal mismatch")
	}
}
