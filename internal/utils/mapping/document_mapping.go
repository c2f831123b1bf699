package mapping

import (
	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/SscSPs/books_backend/internal/models"
)

// ToModelDocument converts a domain Document to a row. An empty payment status is stored as NULL.
func ToModelDocument(d domain.Document) models.Document {
	m := models.Document{
		DocumentID:          d.DocumentID,
		Number:              d.Number,
		DocumentDate:        d.DocumentDate,
		DueDate:             d.DueDate,
		ContactID:           d.ContactID,
		Notes:               d.Notes,
		Status:              string(d.Status),
		Subtotal:            d.Subtotal,
		TaxAmount:           d.TaxAmount,
		Total:               d.Total,
		PaidAmount:          d.PaidAmount,
		SourceDocumentID:    d.SourceDocumentID,
		ConvertedDocumentID: d.ConvertedDocumentID,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
	if d.PaymentStatus != "" {
		status := string(d.PaymentStatus)
		m.PaymentStatus = &status
	}
	return m
}

// ToDomainDocument converts a row of the kind's table to a domain Document without items.
func ToDomainDocument(kind domain.DocumentKind, m models.Document) domain.Document {
	d := domain.Document{
		DocumentID:          m.DocumentID,
		Kind:                kind,
		Number:              m.Number,
		DocumentDate:        m.DocumentDate,
		DueDate:             m.DueDate,
		ContactID:           m.ContactID,
		Notes:               m.Notes,
		Status:              domain.DocumentStatus(m.Status),
		Subtotal:            m.Subtotal,
		TaxAmount:           m.TaxAmount,
		Total:               m.Total,
		PaidAmount:          m.PaidAmount,
		SourceDocumentID:    m.SourceDocumentID,
		ConvertedDocumentID: m.ConvertedDocumentID,
		Items:               []domain.LineItem{},
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
	if m.PaymentStatus != nil {
		d.PaymentStatus = domain.PaymentStatus(*m.PaymentStatus)
	}
	return d
}

func ToDomainDocumentSlice(kind domain.DocumentKind, ms []models.Document) []domain.Document {
	return toDomainSlice(ms, func(m models.Document) domain.Document { return ToDomainDocument(kind, m) })
}

func ToModelLineItem(d domain.LineItem) models.LineItem {
	return models.LineItem{
		LineItemID:  d.LineItemID,
		DocumentID:  d.DocumentID,
		LineNo:      d.LineNo,
		ProductID:   d.ProductID,
		TaxID:       d.TaxID,
		Description: d.Description,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		TaxAmount:   d.TaxAmount,
		Total:       d.Total,
	}
}

func ToDomainLineItem(m models.LineItem) domain.LineItem {
	return domain.LineItem{
		LineItemID:  m.LineItemID,
		DocumentID:  m.DocumentID,
		LineNo:      m.LineNo,
		ProductID:   m.ProductID,
		TaxID:       m.TaxID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		TaxAmount:   m.TaxAmount,
		Total:       m.Total,
	}
}

func ToDomainLineItemSlice(ms []models.LineItem) []domain.LineItem {
	return toDomainSlice(ms, ToDomainLineItem)
}

func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		DocumentID:  d.DocumentID,
		ContactID:   d.ContactID,
		PaymentDate: d.PaymentDate,
		Method:      string(d.Method),
		Amount:      d.Amount,
		Reference:   d.Reference,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainPayment(kind domain.DocumentKind, m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:    m.PaymentID,
		DocumentKind: kind,
		DocumentID:   m.DocumentID,
		ContactID:    m.ContactID,
		PaymentDate:  m.PaymentDate,
		Method:       domain.PaymentMethod(m.Method),
		Amount:       m.Amount,
		Reference:    m.Reference,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainPaymentSlice(kind domain.DocumentKind, ms []models.Payment) []domain.Payment {
	return toDomainSlice(ms, func(m models.Payment) domain.Payment { return ToDomainPayment(kind, m) })
}
