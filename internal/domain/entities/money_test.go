package entities

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in   string
		want Money
	}{
		{"R$ 45,00", 4500},
		{"R$ 1.234,50", 123450},
		{"45", 4500},
		{"45.9", 4590},
		{"1234.56", 123456},
		{"1.234", 123400},
		{"0,5", 50},
		{" R$ 80,00 ", 8000},
		{"-10,00", -1000},
	}
	for _, tc := range cases {
		got, err := ParseMoney(tc.in)
		if err != nil {
			t.Fatalf("ParseMoney(%q) unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseMoney(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "R$", "abc", "1,234", "12,3,4", "1.2.3,x"} {
		if _, err := ParseMoney(bad); !errors.Is(err, ErrInvalidMoney) {
			t.Fatalf("ParseMoney(%q) expected ErrInvalidMoney, got %v", bad, err)
		}
	}
}

func TestMoney_String(t *testing.T) {
	if got := Money(4500).String(); got != "R$ 45,00" {
		t.Fatalf("unexpected format %q", got)
	}
}

func TestMoney_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Price Money `json:"price"`
	}{Price: 3334})
	if err != nil || string(b) != `{"price":33.34}` {
		t.Fatalf("unexpected json %s err=%v", b, err)
	}

	var p struct {
		Price Money `json:"price"`
	}
	if err := json.Unmarshal([]byte(`{"price":"R$ 25,00"}`), &p); err != nil || p.Price != 2500 {
		t.Fatalf("unexpected price %d err=%v", p.Price, err)
	}
	if err := json.Unmarshal([]byte(`{"price":15.1}`), &p); err != nil || p.Price != 1510 {
		t.Fatalf("unexpected price %d err=%v", p.Price, err)
	}
	if err := json.Unmarshal([]byte(`{"price":true}`), &p); err == nil {
		t.Fatalf("expected error for bool price")
	}
}

func TestMoney_Mul(t *testing.T) {
	if got := Money(4500).Mul(3); got != 13500 {
		t.Fatalf("unexpected %d", got)
	}
	if got := NewMoneyFromFloat(33.335); got != 3334 && got != 3333 {
		t.Fatalf("unexpected rounding %d", got)
	}
}
