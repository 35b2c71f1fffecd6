// internal/handlers/contact/contact_handler.go
package contact

import (
	"net/http"
	"strconv"

	"crm-service/internal/domain/contact"
	"crm-service/internal/middleware"
	"crm-service/internal/pkg/response"
	service "crm-service/internal/service/contact"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// CreateContact creates a new contact owned by the caller
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req contact.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.contactService.CreateContact(c.Request.Context(), middleware.MustGetUserID(c), &req)
	if err != nil {
		response.FromError(c, "failed to create contact", err)
		return
	}

	response.Success(c, http.StatusCreated, "contact created successfully", result)
}

// ListContacts retrieves all contacts
func (h *ContactHandler) ListContacts(c *gin.Context) {
	result, err := h.contactService.ListContacts(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to list contacts", err)
		return
	}

	response.Success(c, http.StatusOK, "contacts retrieved", result)
}

// GetContact retrieves a contact with its deals and activities
func (h *ContactHandler) GetContact(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid contact ID", err)
		return
	}

	result, err := h.contactService.GetContact(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, "contact not found", err)
		return
	}

	response.Success(c, http.StatusOK, "contact retrieved", result)
}

// UpdateContact replaces a contact's mutable fields
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid contact ID", err)
		return
	}

	var req contact.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.contactService.UpdateContact(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, "failed to update contact", err)
		return
	}

	response.Success(c, http.StatusOK, "contact updated", result)
}

// DeleteContact removes a contact and everything it owns
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid contact ID", err)
		return
	}

	if err := h.contactService.DeleteContact(c.Request.Context(), id); err != nil {
		response.FromError(c, "failed to delete contact", err)
		return
	}

	response.Success(c, http.StatusOK, "contact deleted", nil)
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
