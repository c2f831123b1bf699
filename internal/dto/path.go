package dto

// IDPath binds the :id segment shared by every entity route.
type IDPath struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// PaymentPath binds /:id/payments/:paymentId.
type PaymentPath struct {
	ID        string `uri:"id" binding:"required,uuid"`
	PaymentID string `uri:"paymentId" binding:"required,uuid"`
}

// PartnerLedgerPath binds /partner-ledger/:contactId.
type PartnerLedgerPath struct {
	ContactID string `uri:"contactId" binding:"required,uuid"`
}
