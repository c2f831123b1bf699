package domain

// ContactType classifies a counterparty.
type ContactType string

const (
	ContactVendor   ContactType = "VENDOR"
	ContactCustomer ContactType = "CUSTOMER"
	ContactBoth     ContactType = "BOTH"
)

// Contact is a vendor or customer.
type Contact struct {
	ContactID   string      `json:"contactID"`
	Name        string      `json:"name"`
	ContactType ContactType `json:"contactType"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	TaxNumber   string      `json:"taxNumber"`
	Address     string      `json:"address"`
	AuditFields
}

// CanSell reports whether documents on the sales side may reference this contact.
func (c Contact) CanSell() bool {
	return c.ContactType == ContactCustomer || c.ContactType == ContactBoth
}

// CanPurchase reports whether documents on the purchase side may reference this contact.
func (c Contact) CanPurchase() bool {
	return c.ContactType == ContactVendor || c.ContactType == ContactBoth
}
