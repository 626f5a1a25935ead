// Package pricing содержит чистые функции расчёта налога и доставки.
// Все суммы в центах, ставки в базисных пунктах - никакой плавающей точки.
package pricing

import "strings"

// Ставки налога в базисных пунктах (875 = 8.75%).
const (
	TaxRateUSCABps          = 875
	TaxRateUSBps            = 650
	TaxRateInternationalBps = 500
)

const (
	MethodStandard = "standard"
	MethodExpress  = "express"
)

var shippingRates = map[string]int{
	MethodStandard: 500,
	MethodExpress:  1500,
}

// TaxRateBps возвращает ставку налога по юрисдикции, без учёта регистра.
func TaxRateBps(country, state string) int {
	country = strings.ToUpper(strings.TrimSpace(country))
	state = strings.ToUpper(strings.TrimSpace(state))

	if country == "US" && state == "CA" {
		return TaxRateUSCABps
	}
	if country == "US" {
		return TaxRateUSBps
	}
	return TaxRateInternationalBps
}

// TaxAmount считает налог на сумму заказа с округлением half-up до цента.
func TaxAmount(subtotalCents int, country, state string) int {
	bps := TaxRateBps(country, state)
	return (subtotalCents*bps + 5000) / 10000
}

// NormalizeMethod приводит способ доставки к известному, по умолчанию standard.
func NormalizeMethod(method string) string {
	method = strings.ToLower(strings.TrimSpace(method))
	if _, ok := shippingRates[method]; !ok {
		return MethodStandard
	}
	return method
}

// ShippingAmount возвращает стоимость доставки в центах.
func ShippingAmount(method string) int {
	return shippingRates[NormalizeMethod(method)]
}
