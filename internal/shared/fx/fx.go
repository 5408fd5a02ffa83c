package fx

import (
	"encoding/json"
	"math"
	"strings"
)

// Approximate mid-market rates to USD, used when FX_USD_RATES is not configured.
var defaultRates = map[string]float64{
	"USD": 1.0,
	"EUR": 1.08,
	"GBP": 1.27,
	"INR": 0.012,
	"AUD": 0.66,
	"CAD": 0.73,
	"SGD": 0.73,
	"PLN": 0.25,
	"RON": 0.21,
	"TRY": 0.033,
	"SEK": 0.09,
	"NOK": 0.09,
	"DKK": 0.145,
	"CHF": 1.10,
	"CZK": 0.041,
	"HUF": 0.0027,
	"JPY": 0.0066,
	"ZAR": 0.055,
}

// Converter converts budget amounts to USD for display.
type Converter struct {
	rates map[string]float64
}

// NewConverter builds a converter from a JSON object of currency->rate-to-USD.
// Invalid or empty input falls back to the built-in table.
func NewConverter(ratesJSON string) *Converter {
	rates := map[string]float64{}
	if ratesJSON != "" {
		var parsed map[string]float64
		if err := json.Unmarshal([]byte(ratesJSON), &parsed); err == nil && len(parsed) > 0 {
			for k, v := range parsed {
				rates[strings.ToUpper(k)] = v
			}
		}
	}
	if len(rates) == 0 {
		for k, v := range defaultRates {
			rates[k] = v
		}
	}
	return &Converter{rates: rates}
}

// ToUSD converts an amount in the given currency to USD, rounded to cents.
// Unknown currencies return ok=false and the caller skips the USD line.
func (c *Converter) ToUSD(amount float64, currency string) (float64, bool) {
	rate, found := c.rates[strings.ToUpper(strings.TrimSpace(currency))]
	if !found || rate == 0 {
		return 0, false
	}
	return math.Round(amount*rate*100) / 100, true
}

// Supported reports whether a currency has a known rate.
func (c *Converter) Supported(currency string) bool {
	_, found := c.rates[strings.ToUpper(strings.TrimSpace(currency))]
	return found
}
