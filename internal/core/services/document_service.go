package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/books_backend/internal/apperrors"
	"github.com/SscSPs/books_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_backend/internal/core/ports/services"
	"github.com/SscSPs/books_backend/internal/dto"
	"github.com/SscSPs/books_backend/internal/platform/config"
	"github.com/SscSPs/books_backend/internal/utils/accounting"
	"github.com/SscSPs/books_backend/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxDocumentPageSize = 100

// documentService implements the DocumentSvcFacade interface
type documentService struct {
	BaseService
	documentRepo portsrepo.DocumentRepositoryFacade
	numbers      portsrepo.DocumentNumberGenerator
	contactRepo  portsrepo.ContactReader
	productRepo  portsrepo.ProductReader
	taxRepo      portsrepo.TaxReader
	postings     *postingResolver
}

// DocumentServiceDeps groups the collaborators of the document service.
type DocumentServiceDeps struct {
	Documents portsrepo.DocumentRepositoryFacade
	Numbers   portsrepo.DocumentNumberGenerator
	Contacts  portsrepo.ContactReader
	Products  portsrepo.ProductReader
	Taxes     portsrepo.TaxReader
	Accounts  portsrepo.AccountReader
}

// NewDocumentService creates the service for purchase orders, sales orders, vendor bills and customer invoices.
func NewDocumentService(deps DocumentServiceDeps, codes config.PostingAccounts) portssvc.DocumentSvcFacade {
	return &documentService{
		BaseService:  newBaseService(),
		documentRepo: deps.Documents,
		numbers:      deps.Numbers,
		contactRepo:  deps.Contacts,
		productRepo:  deps.Products,
		taxRepo:      deps.Taxes,
		postings:     newPostingResolver(deps.Accounts, codes),
	}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

func (s *documentService) CreateDocument(ctx context.Context, kind domain.DocumentKind, req dto.CreateDocumentRequest, userID string) (*domain.Document, error) {
	if !kind.Valid() {
		return nil, apperrors.NewValidationError("unknown document kind '%s'", kind)
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	docDate, err := dto.ParseDate("documentDate", req.DocumentDate)
	if err != nil {
		return nil, err
	}
	dueDate, err := dto.ParseOptionalDate("dueDate", req.DueDate)
	if err != nil {
		return nil, err
	}
	if dueDate != nil && dueDate.Before(docDate) {
		return nil, apperrors.NewValidationError("dueDate %s is before documentDate %s", *req.DueDate, req.DocumentDate)
	}

	if err := s.checkContact(ctx, kind, req.ContactID); err != nil {
		return nil, err
	}

	documentID := uuid.NewString()
	items, err := s.priceLines(ctx, kind, documentID, req.Items)
	if err != nil {
		return nil, err
	}
	totals, err := accounting.AggregateTotals(items)
	if err != nil {
		return nil, err
	}

	number, err := s.numbers.NextNumber(ctx, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate document number", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to allocate document number: %w", err)
	}

	now := s.Now()
	doc := domain.Document{
		DocumentID:   documentID,
		Kind:         kind,
		Number:       number,
		DocumentDate: docDate,
		DueDate:      dueDate,
		ContactID:    req.ContactID,
		Notes:        req.Notes,
		Subtotal:     totals.Subtotal,
		TaxAmount:    totals.TaxAmount,
		Total:        totals.Total,
		PaidAmount:   decimal.Zero,
		Items:        items,
		AuditFields:  domain.NewAuditFields(userID, now),
	}

	var postings *domain.Postings
	if kind.IsOrder() {
		doc.Status = domain.StatusDraft
	} else {
		doc.Status = domain.StatusIssued
		doc.PaymentStatus = domain.PaymentUnpaid
		accts, err := s.postings.resolve(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve posting accounts")
			return nil, err
		}
		if postings, err = documentPostings(doc, accts, userID, now); err != nil {
			return nil, err
		}
	}

	if err := s.documentRepo.SaveDocument(ctx, doc, postings); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save document", slog.String("kind", string(kind)), slog.String("number", number))
		return nil, err
	}

	return &doc, nil
}

// checkContact verifies the counterparty exists and may trade on the document's side.
func (s *documentService) checkContact(ctx context.Context, kind domain.DocumentKind, contactID string) error {
	contact, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Contact lookup failed", slog.String("contact_id", contactID))
		return err
	}
	if kind.IsSalesSide() && !contact.CanSell() {
		return apperrors.NewValidationError("contact %s is a %s and cannot be used on a %s", contactID, contact.ContactType, kind)
	}
	if !kind.IsSalesSide() && !contact.CanPurchase() {
		return apperrors.NewValidationError("contact %s is a %s and cannot be used on a %s", contactID, contact.ContactType, kind)
	}
	return nil
}

// priceLines resolves products and taxes and computes every line. Unit price and tax default to the product's.
func (s *documentService) priceLines(ctx context.Context, kind domain.DocumentKind, documentID string, reqs []dto.LineItemRequest) ([]domain.LineItem, error) {
	productIDs := make([]string, 0, len(reqs))
	for _, r := range reqs {
		productIDs = append(productIDs, r.ProductID)
	}
	products, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	taxIDs := make([]string, 0, len(reqs))
	for _, r := range reqs {
		product, ok := products[r.ProductID]
		if !ok {
			return nil, apperrors.NewNotFoundError("product", r.ProductID)
		}
		if id := lineTaxID(r, product); id != nil {
			taxIDs = append(taxIDs, *id)
		}
	}

	taxes := map[string]domain.Tax{}
	if len(taxIDs) > 0 {
		if taxes, err = s.taxRepo.FindTaxesByIDs(ctx, taxIDs); err != nil {
			return nil, fmt.Errorf("failed to load taxes: %w", err)
		}
	}

	items := make([]domain.LineItem, 0, len(reqs))
	for i, r := range reqs {
		product := products[r.ProductID]

		unitPrice := product.PurchasePrice
		if kind.IsSalesSide() {
			unitPrice = product.SalePrice
		}
		if r.UnitPrice != nil {
			unitPrice = *r.UnitPrice
		}

		var tax *domain.Tax
		taxID := lineTaxID(r, product)
		if taxID != nil {
			t, ok := taxes[*taxID]
			if !ok {
				return nil, apperrors.NewNotFoundError("tax", *taxID)
			}
			tax = &t
		}

		amounts, err := accounting.ComputeLine(*r.Quantity, unitPrice, tax)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		description := r.Description
		if description == "" {
			description = product.Name
		}

		items = append(items, domain.LineItem{
			LineItemID:  uuid.NewString(),
			DocumentID:  documentID,
			LineNo:      i + 1,
			ProductID:   product.ProductID,
			TaxID:       taxID,
			Description: description,
			Quantity:    *r.Quantity,
			UnitPrice:   unitPrice,
			TaxAmount:   amounts.TaxAmount,
			Total:       amounts.Total,
		})
	}
	return items, nil
}

func lineTaxID(r dto.LineItemRequest, product domain.Product) *string {
	if r.TaxID != nil {
		return r.TaxID
	}
	return product.TaxID
}

func (s *documentService) GetDocument(ctx context.Context, kind domain.DocumentKind, documentID string) (*domain.Document, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, kind, documentID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find document", slog.String("kind", string(kind)), slog.String("document_id", documentID))
		return nil, err
	}
	return doc, nil
}

func (s *documentService) ListDocuments(ctx context.Context, kind domain.DocumentKind, params dto.ListDocumentsParams) ([]domain.Document, *string, error) {
	if err := dto.Validate(params); err != nil {
		return nil, nil, err
	}

	filter := portsrepo.DocumentFilter{Limit: params.Limit}
	if filter.Limit <= 0 || filter.Limit > maxDocumentPageSize {
		filter.Limit = defaultPageSize
	}
	if params.ContactID != "" {
		filter.ContactID = &params.ContactID
	}
	if params.Status != "" {
		status := domain.DocumentStatus(params.Status)
		filter.Status = &status
	}
	if params.PaymentStatus != "" {
		if !kind.IsPayable() {
			return nil, nil, apperrors.NewValidationError("paymentStatus does not apply to a %s", kind)
		}
		ps := domain.PaymentStatus(params.PaymentStatus)
		filter.PaymentStatus = &ps
	}

	var err error
	if filter.From, err = dto.ParseOptionalDate("from", &params.From); err != nil {
		return nil, nil, err
	}
	if filter.To, err = dto.ParseOptionalDate("to", &params.To); err != nil {
		return nil, nil, err
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, nil, apperrors.NewValidationError("from must not be after to")
	}
	if filter.After, err = pagination.DecodeOptionalToken(params.NextToken); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	docs, err := s.documentRepo.ListDocuments(ctx, kind, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents", slog.String("kind", string(kind)))
		return nil, nil, fmt.Errorf("failed to list documents: %w", err)
	}

	next := pagination.NextToken(len(docs), filter.Limit, func() pagination.Cursor {
		last := docs[filter.Limit-1]
		return pagination.Cursor{Date: last.DocumentDate, CreatedAt: last.CreatedAt, ID: last.DocumentID}
	})
	if len(docs) > filter.Limit {
		docs = docs[:filter.Limit]
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return docs, next, nil
}

// ConvertOrder creates a bill or invoice from an order and marks the order CONVERTED, all in one
// transaction. A converted order cannot be converted again.
func (s *documentService) ConvertOrder(ctx context.Context, orderKind domain.DocumentKind, orderID string, req dto.ConvertOrderRequest, userID string) (*domain.Document, error) {
	targetKind, ok := orderKind.ConvertsTo()
	if !ok {
		return nil, apperrors.NewValidationError("a %s cannot be converted", orderKind)
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	docDate := s.Today()
	if parsed, err := dto.ParseOptionalDate("documentDate", req.DocumentDate); err != nil {
		return nil, err
	} else if parsed != nil {
		docDate = *parsed
	}
	dueDate, err := dto.ParseOptionalDate("dueDate", req.DueDate)
	if err != nil {
		return nil, err
	}
	if dueDate != nil && dueDate.Before(docDate) {
		return nil, apperrors.NewValidationError("dueDate is before documentDate")
	}

	accts, err := s.postings.resolve(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve posting accounts")
		return nil, err
	}
	number, err := s.numbers.NextNumber(ctx, targetKind)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate document number", slog.String("kind", string(targetKind)))
		return nil, fmt.Errorf("failed to allocate document number: %w", err)
	}

	now := s.Now()
	build := func(order domain.Document) (*domain.Document, *domain.Postings, error) {
		if order.Status == domain.StatusConverted {
			return nil, nil, apperrors.NewConflictError("%s %s is already converted", orderKind, order.Number)
		}
		if docDate.Before(order.DocumentDate) {
			return nil, nil, apperrors.NewValidationError("documentDate is before the order date %s", order.DocumentDate.Format(dto.DateFormat))
		}

		target := convertedDocument(order, targetKind, number, docDate, dueDate, userID, now)
		if req.Notes != nil {
			target.Notes = *req.Notes
		}
		postings, err := documentPostings(target, accts, userID, now)
		if err != nil {
			return nil, nil, err
		}
		return &target, postings, nil
	}

	doc, err := s.documentRepo.ConvertOrder(ctx, orderKind, orderID, build)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to convert order", slog.String("kind", string(orderKind)), slog.String("order_id", orderID))
		return nil, err
	}

	return doc, nil
}

// convertedDocument copies an order into a new bill or invoice. Line tax and totals are carried over unchanged.
func convertedDocument(order domain.Document, kind domain.DocumentKind, number string, date time.Time, due *time.Time, userID string, now time.Time) domain.Document {
	documentID := uuid.NewString()
	items := make([]domain.LineItem, len(order.Items))
	for i, item := range order.Items {
		item.LineItemID = uuid.NewString()
		item.DocumentID = documentID
		items[i] = item
	}
	sourceID := order.DocumentID

	return domain.Document{
		DocumentID:       documentID,
		Kind:             kind,
		Number:           number,
		DocumentDate:     date,
		DueDate:          due,
		ContactID:        order.ContactID,
		Notes:            order.Notes,
		Status:           domain.StatusIssued,
		Subtotal:         order.Subtotal,
		TaxAmount:        order.TaxAmount,
		Total:            order.Total,
		PaidAmount:       decimal.Zero,
		PaymentStatus:    domain.PaymentUnpaid,
		SourceDocumentID: &sourceID,
		Items:            items,
		AuditFields:      domain.NewAuditFields(userID, now),
	}
}

// DeleteDocument removes a draft order, or an unpaid bill or invoice. Deleting a bill or invoice
// appends reversing ledger entries and stock movements.
func (s *documentService) DeleteDocument(ctx context.Context, kind domain.DocumentKind, documentID string, userID string) error {
	if !kind.Valid() {
		return apperrors.NewValidationError("unknown document kind '%s'", kind)
	}

	var accts *postingAccountIDs
	if kind.IsPayable() {
		var err error
		if accts, err = s.postings.resolve(ctx); err != nil {
			s.LogError(ctx, err, "Failed to resolve posting accounts")
			return err
		}
	}

	now := s.Now()
	guard := func(doc domain.Document) (*domain.Postings, error) {
		if kind.IsOrder() {
			if doc.Status != domain.StatusDraft {
				return nil, apperrors.NewConflictError("%s %s is %s and cannot be deleted", kind, doc.Number, doc.Status)
			}
			return nil, nil
		}
		if doc.PaidAmount.IsPositive() {
			return nil, apperrors.NewConflictError("%s %s has payments and cannot be deleted", kind, doc.Number)
		}
		return reversalPostings(doc, accts, userID, now)
	}

	if err := s.documentRepo.DeleteDocument(ctx, kind, documentID, guard); err != nil {
		s.LogUnexpected(ctx, err, "Failed to delete document", slog.String("kind", string(kind)), slog.String("document_id", documentID))
		return err
	}

	return nil
}
