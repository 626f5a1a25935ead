package pricing_test

import (
	"testing"

	"github.com/SergeyBogomolovv/storefront-service/internal/pricing"
	"github.com/stretchr/testify/assert"
)

func TestTaxRateBps(t *testing.T) {
	testCases := []struct {
		name    string
		country string
		state   string
		want    int
	}{
		{name: "US California", country: "US", state: "CA", want: 875},
		{name: "US other state", country: "US", state: "NY", want: 650},
		{name: "international", country: "ES", state: "", want: 500},
		{name: "case insensitive country", country: "us", state: "ca", want: 875},
		{name: "trims whitespace", country: " US ", state: " ca", want: 875},
		{name: "empty jurisdiction", country: "", state: "", want: 500},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pricing.TaxRateBps(tc.country, tc.state))
		})
	}
}

func TestTaxAmount(t *testing.T) {
	testCases := []struct {
		name     string
		subtotal int
		country  string
		state    string
		want     int
	}{
		{name: "exact cents", subtotal: 10000, country: "US", state: "CA", want: 875},
		{name: "rounds half up", subtotal: 1234, country: "US", state: "NY", want: 80}, // 80.21 -> 80
		{name: "half rounds up", subtotal: 200, country: "US", state: "CA", want: 18},  // 17.5 -> 18
		{name: "zero subtotal", subtotal: 0, country: "US", state: "CA", want: 0},
		{name: "international", subtotal: 999, country: "DE", state: "", want: 50}, // 49.95 -> 50
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pricing.TaxAmount(tc.subtotal, tc.country, tc.state))
		})
	}
}

func TestShippingAmount(t *testing.T) {
	assert.Equal(t, 500, pricing.ShippingAmount("standard"))
	assert.Equal(t, 1500, pricing.ShippingAmount("express"))
	assert.Equal(t, 500, pricing.ShippingAmount("unknown"))
	assert.Equal(t, 500, pricing.ShippingAmount(""))
	assert.Equal(t, 1500, pricing.ShippingAmount("EXPRESS"))
}

func TestNormalizeMethod(t *testing.T) {
	assert.Equal(t, "express", pricing.NormalizeMethod("Express"))
	assert.Equal(t, "standard", pricing.NormalizeMethod("pigeon"))
	assert.Equal(t, "standard", pricing.NormalizeMethod(""))
}
