package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCurrencyForCountry(t *testing.T) {
	tests := []struct {
		name    string
		country string
		want    string
	}{
		{"UnitedStates", "US", "USD"},
		{"France", "FR", "EUR"},
		{"Japan", "JP", "JPY"},
		{"UnitedKingdom", "GB", "GBP"},
		{"Lowercase", "fr", "EUR"},
		{"Whitespace", " jp ", "JPY"},
		{"Empty", "", "USD"},
		{"Unknown", "ZZ", "USD"},
		{"Garbage", "not a code", "USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetCurrencyForCountry(tt.country))
		})
	}
}
