// internal/service/contact/contact_service.go
package contact

import (
	"context"
	"database/sql"

	"crm-service/internal/domain/activity"
	"crm-service/internal/domain/contact"
	"crm-service/internal/domain/deal"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type ContactRepository interface {
	Create(ctx context.Context, c *contact.Contact) error
	FindByID(ctx context.Context, id int64) (*contact.Contact, error)
	List(ctx context.Context) ([]contact.Contact, error)
	Update(ctx context.Context, c *contact.Contact) error
	DeleteCascade(ctx context.Context, id int64) error
}

type DealLister interface {
	ListByContact(ctx context.Context, contactID int64) ([]deal.Deal, error)
}

type ActivityLister interface {
	ListByContact(ctx context.Context, contactID int64) ([]activity.Activity, error)
}

type ContactService struct {
	contactRepo  ContactRepository
	dealRepo     DealLister
	activityRepo ActivityLister
	logger       *zap.Logger
}

func NewContactService(contactRepo ContactRepository, dealRepo DealLister, activityRepo ActivityLister, logger *zap.Logger) *ContactService {
	return &ContactService{
		contactRepo:  contactRepo,
		dealRepo:     dealRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// CreateContact creates a contact owned by the calling user.
func (s *ContactService) CreateContact(ctx context.Context, userID string, req *contact.CreateContactRequest) (*contact.Contact, error) {
	status := req.Status
	if status == "" {
		status = contact.StatusLead
	}

	c := &contact.Contact{
		UserID:     userID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      sql.NullString{String: req.Phone, Valid: req.Phone != ""},
		Company:    sql.NullString{String: req.Company, Valid: req.Company != ""},
		Title:      sql.NullString{String: req.Title, Valid: req.Title != ""},
		Status:     status,
		Source:     sql.NullString{String: req.Source, Valid: req.Source != ""},
		Notes:      sql.NullString{String: req.Notes, Valid: req.Notes != ""},
		AssignedTo: sql.NullString{String: req.AssignedTo, Valid: req.AssignedTo != ""},
		Tags:       pq.StringArray(req.Tags),
	}

	if err := s.contactRepo.Create(ctx, c); err != nil {
		s.logger.Error("failed to create contact", zap.Error(err))
		return nil, err
	}

	s.logger.Info("contact created",
		zap.Int64("contact_id", c.ID),
		zap.String("user_id", userID),
	)

	return c, nil
}

// GetContact retrieves a contact with the deals and activities it owns.
func (s *ContactService) GetContact(ctx context.Context, id int64) (*contact.ContactDetail, error) {
	c, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	deals, err := s.dealRepo.ListByContact(ctx, id)
	if err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.ListByContact(ctx, id)
	if err != nil {
		return nil, err
	}

	return &contact.ContactDetail{
		Contact:    *c,
		Deals:      deals,
		Activities: activities,
	}, nil
}

// ListContacts retrieves all contacts.
func (s *ContactService) ListContacts(ctx context.Context) ([]contact.Contact, error) {
	return s.contactRepo.List(ctx)
}

// UpdateContact replaces the mutable fields of an existing contact.
func (s *ContactService) UpdateContact(ctx context.Context, id int64, req *contact.UpdateContactRequest) (*contact.Contact, error) {
	c, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Name = req.Name
	c.Email = req.Email
	c.Phone = sql.NullString{String: req.Phone, Valid: req.Phone != ""}
	c.Company = sql.NullString{String: req.Company, Valid: req.Company != ""}
	c.Title = sql.NullString{String: req.Title, Valid: req.Title != ""}
	c.Status = req.Status
	c.Source = sql.NullString{String: req.Source, Valid: req.Source != ""}
	c.Notes = sql.NullString{String: req.Notes, Valid: req.Notes != ""}
	c.AssignedTo = sql.NullString{String: req.AssignedTo, Valid: req.AssignedTo != ""}
	c.Tags = pq.StringArray(req.Tags)

	if err := s.contactRepo.Update(ctx, c); err != nil {
		s.logger.Error("failed to update contact", zap.Int64("contact_id", id), zap.Error(err))
		return nil, err
	}

	return c, nil
}

// DeleteContact removes a contact and cascades to its deals and activities.
func (s *ContactService) DeleteContact(ctx context.Context, id int64) error {
	if err := s.contactRepo.DeleteCascade(ctx, id); err != nil {
		return err
	}

	s.logger.Info("contact deleted", zap.Int64("contact_id", id))
	return nil
}
