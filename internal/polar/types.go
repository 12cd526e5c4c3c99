package polar

import "github.com/world1dan/customers-map/internal/orders"

// Userinfo is the OIDC userinfo response. For organization tokens, sub is
// the organization id.
type Userinfo struct {
	Sub   string `json:"sub"`
	Email string `json:"email,omitempty"`
}

// Organization is the merchant's profile, fetched once per handshake and
// cached verbatim.
type Organization struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Pagination is the envelope metadata on list responses.
type Pagination struct {
	TotalCount int `json:"total_count"`
	MaxPage    int `json:"max_page"`
}

// OrdersPage is one page of the order listing.
type OrdersPage struct {
	Items      []orders.Order `json:"items"`
	Pagination Pagination     `json:"pagination"`
}
