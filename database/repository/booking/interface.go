package bookingRepo

import (
	"context"

	"befixed/database"
	"befixed/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists booking records. The dialogue core only creates
// bookings and lists them back; status transitions happen elsewhere.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByClientID(ctx context.Context, clientID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("befixed")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
