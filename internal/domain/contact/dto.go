package contact

import (
	"crm-service/internal/domain/activity"
	"crm-service/internal/domain/deal"
)

type CreateContactRequest struct {
	Name       string   `json:"name" binding:"required,max=100"`
	Email      string   `json:"email" binding:"required,email,max=255"`
	Phone      string   `json:"phone" binding:"max=20"`
	Company    string   `json:"company" binding:"max=100"`
	Title      string   `json:"title" binding:"max=100"`
	Status     string   `json:"status"`
	Source     string   `json:"source"`
	Notes      string   `json:"notes"`
	AssignedTo string   `json:"assigned_to" binding:"max=100"`
	Tags       []string `json:"tags"`
}

// UpdateContactRequest replaces the mutable contact fields wholesale,
// matching the edit-form semantics (an omitted optional field clears it).
type UpdateContactRequest struct {
	Name       string   `json:"name" binding:"required,max=100"`
	Email      string   `json:"email" binding:"required,email,max=255"`
	Phone      string   `json:"phone" binding:"max=20"`
	Company    string   `json:"company" binding:"max=100"`
	Title      string   `json:"title" binding:"max=100"`
	Status     string   `json:"status" binding:"required"`
	Source     string   `json:"source"`
	Notes      string   `json:"notes"`
	AssignedTo string   `json:"assigned_to" binding:"max=100"`
	Tags       []string `json:"tags"`
}

// ContactDetail is a contact together with everything it owns.
type ContactDetail struct {
	Contact    Contact             `json:"contact"`
	Deals      []deal.Deal         `json:"deals"`
	Activities []activity.Activity `json:"activities"`
}
