package mapping

import (
	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/SscSPs/books_backend/internal/models"
)

func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		LedgerEntryID:   d.LedgerEntryID,
		AccountID:       d.AccountID,
		ContactID:       d.ContactID,
		EntryType:       string(d.EntryType),
		Amount:          d.Amount,
		TransactionDate: d.TransactionDate,
		ReferenceType:   string(d.ReferenceType),
		ReferenceID:     d.ReferenceID,
		Description:     d.Description,
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
	}
}

func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		LedgerEntryID:   m.LedgerEntryID,
		AccountID:       m.AccountID,
		ContactID:       m.ContactID,
		EntryType:       domain.EntryType(m.EntryType),
		Amount:          m.Amount,
		TransactionDate: m.TransactionDate,
		ReferenceType:   domain.ReferenceType(m.ReferenceType),
		ReferenceID:     m.ReferenceID,
		Description:     m.Description,
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
	}
}

func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	return toDomainSlice(ms, ToDomainLedgerEntry)
}

func ToModelStockMovement(d domain.StockMovement) models.StockMovement {
	return models.StockMovement{
		MovementID:    d.MovementID,
		ProductID:     d.ProductID,
		MovementType:  string(d.MovementType),
		Quantity:      d.Quantity,
		MovementDate:  d.MovementDate,
		ReferenceType: string(d.ReferenceType),
		ReferenceID:   d.ReferenceID,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

func ToDomainStockMovement(m models.StockMovement) domain.StockMovement {
	return domain.StockMovement{
		MovementID:    m.MovementID,
		ProductID:     m.ProductID,
		MovementType:  domain.MovementType(m.MovementType),
		Quantity:      m.Quantity,
		MovementDate:  m.MovementDate,
		ReferenceType: domain.ReferenceType(m.ReferenceType),
		ReferenceID:   m.ReferenceID,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

func ToDomainStockMovementSlice(ms []models.StockMovement) []domain.StockMovement {
	return toDomainSlice(ms, ToDomainStockMovement)
}
