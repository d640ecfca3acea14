package etfnav

import (
	"errors"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"N/A", 0},
		{"--", 0},
		{"%", 0},
		{"42", 42},
		{"-3.5", -3.5},
		{" $1,234.50 ", 1234.5},
		{"5%", 0.05},
		{"12.5%", 0.125},
		{"1.5B", 1.5e9},
		{"2m", 2e6},
		{"$3.2K", 3200},
		{"1.5KB", 0},
	}
	for _, tt := range tests {
		if got := ParseNumber(tt.raw); got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseNumberPercent(t *testing.T) {
	for _, s := range []string{"5", "12.5", "0.25", "100", "7", "1.1", "0.07", "8.2", "-3.3"} {
		if got, want := ParseNumber(s+"%"), ParseNumber(s)/100; got != want {
			t.Errorf("ParseNumber(%q) = %v, want %v", s+"%", got, want)
		}
	}
}

func TestParseNumberSuffix(t *testing.T) {
	scale := map[string]float64{"K": 1e3, "M": 1e6, "B": 1e9}
	for suffix, factor := range scale {
		for _, s := range []string{"1", "2.5", "10", "8.2", "1.1", "0.07"} {
			if got, want := ParseNumber(s+suffix), ParseNumber(s)*factor; got != want {
				t.Errorf("ParseNumber(%q) = %v, want %v", s+suffix, got, want)
			}
		}
	}
}

func TestParseNumberError(t *testing.T) {
	if _, err := parseNumber("N/A"); !errors.Is(err, ErrNumber) {
		t.Errorf("parseNumber(%q) error = %v, want %v", "N/A", err, ErrNumber)
	}
	if v, err := parseNumber(""); err != nil || v != 0 {
		t.Errorf("parseNumber(%q) = %v, %v, want 0, nil", "", v, err)
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"$512.34", 512.34, false},
		{"1,024.5", 1024.5, false},
		{"250", 250, false},
		{"", 0, true},
		{"5%", 0, true},
		{"1.5B", 0, true},
		{"N/A", 0, true},
	}
	for _, tt := range tests {
		got, err := ParsePrice(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePrice(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePrice(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
