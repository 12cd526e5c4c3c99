package orders

import (
	"fmt"
	"sort"

	"github.com/world1dan/customers-map/internal/country"
)

// CountryInfo is one row of the aggregated breakdown: display metadata plus
// the revenue and distinct-customer tallies for a billing country. It is a
// pure projection, recomputed from scratch on every Analyze call.
type CountryInfo struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	Flag           string `json:"flag"`
	TotalRevenue   int64  `json:"total_revenue"`
	TotalCustomers int    `json:"total_customers"`
}

// Analyze reduces an order list to countries ranked by revenue, descending.
//
// Customers are deduplicated by id (first occurrence wins) and the distinct
// billing countries among them form the country set. Any country in the set
// that fails to resolve aborts the whole aggregation: it signals a data
// integrity problem upstream, not a recoverable per-row condition. Revenue is
// then summed over the full, non-deduplicated order list, skipping orders
// whose customer has no country in the set. Countries with zero revenue are
// dropped from the result.
func Analyze(all []Order) ([]CountryInfo, error) {
	customers := uniqueCustomers(all)
	codes := uniqueCustomerCountries(customers)

	info := make(map[string]*CountryInfo, len(codes))
	for _, code := range codes {
		resolved, err := country.Resolve(code)
		if err != nil {
			return nil, fmt.Errorf("analyzing orders: %w", err)
		}
		info[code] = &CountryInfo{
			Code: resolved.Code,
			Name: resolved.Name,
			Flag: resolved.Flag,
		}
	}

	for _, c := range customers {
		if code, ok := c.BillingCountry(); ok {
			if rec := info[code]; rec != nil {
				rec.TotalCustomers++
			}
		}
	}

	for _, o := range all {
		code, ok := o.Customer.BillingCountry()
		if !ok {
			continue
		}
		rec := info[code]
		if rec == nil {
			continue
		}
		rec.TotalRevenue += o.NetAmount
	}

	out := make([]CountryInfo, 0, len(info))
	for _, code := range codes {
		if rec := info[code]; rec.TotalRevenue > 0 {
			out = append(out, *rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalRevenue > out[j].TotalRevenue
	})
	return out, nil
}

// uniqueCustomers deduplicates order customers by id, preserving first-seen
// encounter order. Orders without a customer are skipped.
func uniqueCustomers(all []Order) []*Customer {
	seen := make(map[string]bool)
	var unique []*Customer
	for _, o := range all {
		c := o.Customer
		if c == nil || c.ID == "" || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		unique = append(unique, c)
	}
	return unique
}

// uniqueCustomerCountries returns the distinct valid billing country codes
// among the deduplicated customers, in encounter order.
func uniqueCustomerCountries(customers []*Customer) []string {
	seen := make(map[string]bool)
	var codes []string
	for _, c := range customers {
		code, ok := c.BillingCountry()
		if !ok || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	return codes
}
