package domain

// Address stores the billing or shipping fields returned to clients.
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company,omitempty"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Customer is the session's resolved owner: a registered account when the
// customer blob carries a known account id, otherwise a guest assembled from
// the blob itself.
type Customer struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	VatExempt bool    `json:"-"`
	Billing   Address `json:"billing_address"`
	Shipping  Address `json:"shipping_address"`
}
