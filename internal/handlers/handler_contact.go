package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/books_backend/internal/core/ports/services"
	"github.com/SscSPs/books_backend/internal/dto"
	"github.com/SscSPs/books_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// contactHandler handles HTTP requests related to vendors and customers.
type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

func newContactHandler(cs portssvc.ContactSvcFacade) *contactHandler {
	return &contactHandler{contactService: cs}
}

// RegisterContactRoutes registers routes related to contacts.
func RegisterContactRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade) {
	h := newContactHandler(contactService)

	contacts := rg.Group("/contacts")
	{
		contacts.POST("", h.createContact)
		contacts.GET("", h.listContacts)
		contacts.GET("/:id", h.getContact)
		contacts.PUT("/:id", h.updateContact)
		contacts.DELETE("/:id", h.deleteContact)
	}
}

// createContact godoc
// @Summary Create a contact
// @Description Creates a vendor, customer or a contact that is both
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body dto.CreateContactRequest true "Contact details"
// @Success 201 {object} dto.ContactResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create contact"
// @Security BearerAuth
// @Router /contacts [post]
func (h *contactHandler) createContact(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.CreateContactRequest
	if !bindJSON(c, &req) {
		return
	}

	contact, err := h.contactService.CreateContact(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create contact")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Contact created", slog.String("contact_id", contact.ContactID))
	c.JSON(http.StatusCreated, dto.ToContactResponse(contact))
}

// getContact godoc
// @Summary Get a contact by ID
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} dto.ContactResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Contact not found"
// @Failure 500 {object} map[string]string "Failed to retrieve contact"
// @Security BearerAuth
// @Router /contacts/{id} [get]
func (h *contactHandler) getContact(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	contact, err := h.contactService.GetContactByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to retrieve contact")
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

// listContacts godoc
// @Summary List contacts
// @Description Lists contacts by name. A VENDOR or CUSTOMER filter includes contacts of type BOTH.
// @Tags contacts
// @Produce json
// @Param type query string false "Contact type" Enums(VENDOR, CUSTOMER, BOTH)
// @Param limit query int false "Limit number of results" default(50)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListContactsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list contacts"
// @Security BearerAuth
// @Router /contacts [get]
func (h *contactHandler) listContacts(c *gin.Context) {
	var params dto.ListContactsParams
	if !bindQuery(c, &params) {
		return
	}

	contacts, err := h.contactService.ListContacts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list contacts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListContactsResponse(contacts))
}

// updateContact godoc
// @Summary Update a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param contact body dto.UpdateContactRequest true "Fields to update"
// @Success 200 {object} dto.ContactResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Contact not found"
// @Failure 500 {object} map[string]string "Failed to update contact"
// @Security BearerAuth
// @Router /contacts/{id} [put]
func (h *contactHandler) updateContact(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.UpdateContactRequest
	if !bindJSON(c, &req) {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}
	contact, err := h.contactService.UpdateContact(c.Request.Context(), id, req, userID)
	if err != nil {
		respondError(c, err, "Failed to update contact")
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

// deleteContact godoc
// @Summary Delete a contact
// @Description Deletes a contact that no document, payment or ledger entry refers to
// @Tags contacts
// @Param id path string true "Contact ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Contact not found"
// @Failure 409 {object} map[string]string "Contact is in use"
// @Failure 500 {object} map[string]string "Failed to delete contact"
// @Security BearerAuth
// @Router /contacts/{id} [delete]
func (h *contactHandler) deleteContact(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.contactService.DeleteContact(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete contact")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Contact deleted", slog.String("contact_id", id))
	c.Status(http.StatusNoContent)
}
