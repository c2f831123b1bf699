package mapping

import (
	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/SscSPs/books_backend/internal/models"
)

func ToModelContact(d domain.Contact) models.Contact {
	return models.Contact{
		ContactID:   d.ContactID,
		Name:        d.Name,
		ContactType: string(d.ContactType),
		Email:       d.Email,
		Phone:       d.Phone,
		TaxNumber:   d.TaxNumber,
		Address:     d.Address,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainContact(m models.Contact) domain.Contact {
	return domain.Contact{
		ContactID:   m.ContactID,
		Name:        m.Name,
		ContactType: domain.ContactType(m.ContactType),
		Email:       m.Email,
		Phone:       m.Phone,
		TaxNumber:   m.TaxNumber,
		Address:     m.Address,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainContactSlice(ms []models.Contact) []domain.Contact {
	return toDomainSlice(ms, ToDomainContact)
}

func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:     d.ProductID,
		Name:          d.Name,
		SKU:           d.SKU,
		Unit:          d.Unit,
		HSNCode:       d.HSNCode,
		PurchasePrice: d.PurchasePrice,
		SalePrice:     d.SalePrice,
		TaxID:         d.TaxID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:     m.ProductID,
		Name:          m.Name,
		SKU:           m.SKU,
		Unit:          m.Unit,
		HSNCode:       m.HSNCode,
		PurchasePrice: m.PurchasePrice,
		SalePrice:     m.SalePrice,
		TaxID:         m.TaxID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainProductSlice(ms []models.Product) []domain.Product {
	return toDomainSlice(ms, ToDomainProduct)
}

func ToDomainHSNCode(m models.HSNCode) domain.HSNCode {
	return domain.HSNCode{Code: m.Code, Description: m.Description, AuditFields: ToDomainAuditFields(m.AuditFields)}
}

func ToDomainHSNCodeSlice(ms []models.HSNCode) []domain.HSNCode {
	return toDomainSlice(ms, ToDomainHSNCode)
}

func ToModelTax(d domain.Tax) models.Tax {
	return models.Tax{
		TaxID:       d.TaxID,
		Name:        d.Name,
		Rate:        d.Rate,
		Method:      string(d.Method),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainTax(m models.Tax) domain.Tax {
	return domain.Tax{
		TaxID:       m.TaxID,
		Name:        m.Name,
		Rate:        m.Rate,
		Method:      domain.TaxMethod(m.Method),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainTaxSlice(ms []models.Tax) []domain.Tax {
	return toDomainSlice(ms, ToDomainTax)
}
