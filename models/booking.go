// models/booking.go
package models

import "time"

// Booking status lifecycle. The chatbot core only ever creates bookings in
// "pending"; later transitions are driven externally.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in_progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// Booking represents a confirmed technician selection.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	ClientID      string    `bson:"client_id" json:"clientId"`
	TechnicianID  string    `bson:"technician_id" json:"technicianId"`
	ServiceType   string    `bson:"service_type" json:"serviceType"`
	Description   string    `bson:"description" json:"description"`
	Location      string    `bson:"location" json:"location"`
	ScheduledTime time.Time `bson:"scheduled_time" json:"scheduledTime"`
	Status        string    `bson:"status" json:"status"`
	Price         float64   `bson:"price" json:"price"`
	Urgency       string    `bson:"urgency" json:"urgency"`
	Rating        *float64  `bson:"rating" json:"rating"`
	Review        *string   `bson:"review" json:"review"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}
