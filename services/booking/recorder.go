// File: services/booking/recorder.go
package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "befixed/database/repository/booking"
	technicianRepo "befixed/database/repository/technician"
	"befixed/models"

	"github.com/google/uuid"
)

// CreateInput carries the fields needed to record a booking. ScheduledTime is
// optional; it defaults to 30 minutes from now.
type CreateInput struct {
	ClientID      string
	TechnicianID  string
	ServiceType   string
	ScheduledTime *time.Time
	Location      string
	Description   string
	Urgency       string
}

// RecorderService persists confirmed technician selections.
type RecorderService interface {
	Create(ctx context.Context, in CreateInput) (*models.Booking, error)
}

// DefaultRecorderService implements RecorderService.
type DefaultRecorderService struct {
	Repo       bookingRepo.BookingRepository
	Technician technicianRepo.TechnicianRepository
}

// Create validates the referenced technician, fills defaults and persists the
// booking. New bookings always start out pending.
func (s *DefaultRecorderService) Create(ctx context.Context, in CreateInput) (*models.Booking, error) {
	if in.ClientID == "" {
		return nil, NewValidationError("clientId", "client id is required")
	}
	if in.TechnicianID == "" {
		return nil, NewValidationError("technicianId", "technician id is required")
	}
	if in.ServiceType == "" {
		return nil, NewValidationError("serviceType", "service type is required")
	}
	if in.Location == "" {
		return nil, NewValidationError("location", "location is required")
	}

	tech, err := s.Technician.GetByID(in.TechnicianID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up technician: %w", err)
	}
	if tech == nil {
		return nil, NewNotFoundError("technician", in.TechnicianID)
	}

	now := time.Now()
	scheduled := now.Add(30 * time.Minute)
	if in.ScheduledTime != nil {
		scheduled = *in.ScheduledTime
	}

	booking := models.Booking{
		ID:            uuid.New().String(),
		ClientID:      in.ClientID,
		TechnicianID:  in.TechnicianID,
		ServiceType:   in.ServiceType,
		Description:   in.Description,
		Location:      in.Location,
		ScheduledTime: scheduled,
		Status:        models.BookingStatusPending,
		Urgency:       in.Urgency,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}
	return &booking, nil
}
