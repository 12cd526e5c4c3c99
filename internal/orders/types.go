// Package orders defines the order records fetched from the platform API and
// the aggregation that reduces them to a ranked per-country breakdown.
package orders

import "strings"

// Order is a single completed order. NetAmount is in the currency's minor
// unit (cents). Orders are immutable once fetched.
type Order struct {
	ID        string    `json:"id"`
	NetAmount int64     `json:"net_amount"`
	Customer  *Customer `json:"customer,omitempty"`
}

// Customer is the purchasing customer attached to an order. The aggregator
// only uses the ID (as a deduplication key) and the billing country.
type Customer struct {
	ID             string   `json:"id"`
	Email          string   `json:"email,omitempty"`
	Name           string   `json:"name,omitempty"`
	BillingAddress *Address `json:"billing_address,omitempty"`
}

// Address carries the parts of a billing address the application reads.
type Address struct {
	Country string `json:"country,omitempty"`
	City    string `json:"city,omitempty"`
}

// BillingCountry returns the customer's billing country as an uppercase
// alpha-2 code. Missing addresses and codes that are not exactly two ASCII
// letters report ok=false; such customers are excluded from aggregation
// without error.
func (c *Customer) BillingCountry() (string, bool) {
	if c == nil || c.BillingAddress == nil {
		return "", false
	}
	code := strings.ToUpper(c.BillingAddress.Country)
	if len(code) != 2 {
		return "", false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return "", false
		}
	}
	return code, true
}
