package phone_test

import (
	"testing"

	"github.com/ordervox/ordervox/internal/phone"
)

func TestNormalize_Valid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"5551234", "5551234"},
		{"555-1234", "5551234"},
		{"(042) 35.71", "0423571"},
		{"five five five one two three four", "5551234"},
		{"double five triple six", "55666"},
		{"oh one two", "012"},
		{"o two one", "021"},
		{"555 one two 34", "5551234"},
		{"double zero", "00"},
		{"triple 7", "777"},
		{"  Five  FIVE five ", "555"},
	}
	for _, tc := range cases {
		got := phone.Normalize(tc.in)
		if !got.Valid {
			t.Errorf("Normalize(%q): invalid, want valid %q", tc.in, tc.want)
			continue
		}
		if got.Digits != tc.want {
			t.Errorf("Normalize(%q)=%q, want %q", tc.in, got.Digits, tc.want)
		}
	}
}

func TestNormalize_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     string
		digits string
	}{
		{"call me maybe", ""},
		{"", ""},
		{"   ", ""},
		{"five 5x", "5"},     // "5x" is no digit run; the lone "five" still maps
		{"double 55", "55"},  // multipliers apply to single digits only
		{"double", ""},       // dangling multiplier
		{"555 then 1234", "5551234"},
	}
	for _, tc := range cases {
		got := phone.Normalize(tc.in)
		if got.Valid {
			t.Errorf("Normalize(%q): valid with %q, want invalid", tc.in, got.Digits)
			continue
		}
		if got.Digits != tc.digits {
			t.Errorf("Normalize(%q)=%q, want partial digits %q", tc.in, got.Digits, tc.digits)
		}
	}
}
