package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFitsScale(t *testing.T) {
	cases := []struct {
		value string
		scale int32
		ok    bool
	}{
		{"19.99", MoneyScale, true},
		{"19.9", MoneyScale, true},
		{"20", MoneyScale, true},
		{"19.999", MoneyScale, false},
		{"0.001", MoneyScale, false},
		{"0.1234", RatioScale, true},
		{"0.12345", RatioScale, false},
		{"-5.25", MoneyScale, true},
	}

	for _, c := range cases {
		d, err := decimal.NewFromString(c.value)
		assert.NoError(t, err)
		assert.Equal(t, c.ok, FitsScale(d, c.scale), "%s at scale %d", c.value, c.scale)
	}
}

func TestMoneyZero(t *testing.T) {
	assert.True(t, MoneyZero().IsZero())
	assert.Equal(t, int32(-MoneyScale), MoneyZero().Exponent())
}
