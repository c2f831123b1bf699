package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/books_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	"github.com/SscSPs/books_backend/internal/models"
	"github.com/SscSPs/books_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const contactColumns = `contact_id, name, contact_type, email, phone, tax_number, address,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxContactRepository struct {
	BaseRepository
}

func newPgxContactRepository(pool *pgxpool.Pool) portsrepo.ContactRepositoryFacade {
	return &PgxContactRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContactRepositoryFacade = (*PgxContactRepository)(nil)

func (r *PgxContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	m := mapping.ToModelContact(contact)
	query := `
		INSERT INTO contacts (` + contactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ContactID, m.Name, m.ContactType, m.Email, m.Phone, m.TaxNumber, m.Address,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save contact %s: %w", m.ContactID, mapPgError(err, "contact", m.ContactID))
	}
	return nil
}

func (r *PgxContactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE contact_id = $1;`
	m, err := collectOne[models.Contact](ctx, r.Pool, query, contactID)
	if err != nil {
		return nil, mapPgError(err, "contact", contactID)
	}
	c := mapping.ToDomainContact(m)
	return &c, nil
}

// ListContacts lists contacts by name. A vendor or customer filter also matches contacts of type BOTH.
func (r *PgxContactRepository) ListContacts(ctx context.Context, filter portsrepo.ContactFilter) ([]domain.Contact, error) {
	var contactType *string
	if filter.Type != nil {
		t := string(*filter.Type)
		contactType = &t
	}
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE ($1::text IS NULL OR contact_type = $1 OR contact_type = 'BOTH')
		ORDER BY name, contact_id
		LIMIT $2 OFFSET $3;
	`
	ms, err := collect[models.Contact](ctx, r.Pool, query, contactType, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return mapping.ToDomainContactSlice(ms), nil
}

func (r *PgxContactRepository) UpdateContact(ctx context.Context, contact domain.Contact) error {
	m := mapping.ToModelContact(contact)
	query := `
		UPDATE contacts
		SET name = $2, contact_type = $3, email = $4, phone = $5, tax_number = $6, address = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE contact_id = $1;
	`
	return execOne(ctx, r.Pool, "contact", m.ContactID, query,
		m.ContactID, m.Name, m.ContactType, m.Email, m.Phone, m.TaxNumber, m.Address, m.LastUpdatedAt, m.LastUpdatedBy,
	)
}

// DeleteContact removes a contact. Contacts with documents, payments or ledger entries are kept.
func (r *PgxContactRepository) DeleteContact(ctx context.Context, contactID string) error {
	return execOne(ctx, r.Pool, "contact", contactID, `DELETE FROM contacts WHERE contact_id = $1;`, contactID)
}
