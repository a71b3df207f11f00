package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"officespace/internal/config"
	"officespace/internal/database"
	"officespace/internal/domain"
	"officespace/internal/repository"
)

// Seeds a local database with the office inventory, a few bookings and
// pending requests. This is also the only path that creates "blocked"
// bookings: blackouts are administratively seeded, never created through
// the API.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}

	logrus.Info("cleaning old data")
	db.Exec("DELETE FROM booking_requests")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM resources")

	ctx := context.Background()
	resourceRepo := repository.NewResourceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	requestRepo := repository.NewRequestRepository(db)

	logrus.Info("creating resources")
	resources := []*domain.Resource{
		{Name: "Sala Grande", Type: domain.ResourceRoom, Capacity: 12, Description: "Main meeting room, projector and whiteboard"},
		{Name: "Sala Chica", Type: domain.ResourceRoom, Capacity: 6, Description: "Small meeting room"},
		{Name: "Cabina 1", Type: domain.ResourceBooth, Capacity: 1, Description: "Phone booth near reception"},
		{Name: "Cabina 2", Type: domain.ResourceBooth, Capacity: 1, Description: "Phone booth, second floor"},
	}
	for _, r := range resources {
		if err := resourceRepo.Create(ctx, r); err != nil {
			logrus.WithError(err).Fatal("resource seed failed")
		}
	}

	day := time.Now().Truncate(24 * time.Hour).Add(24 * time.Hour)
	slot := func(h, m int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, time.UTC)
	}

	logrus.Info("creating bookings")
	bookings := []*domain.Booking{
		{
			ResourceType: resources[0].Type, ResourceID: resources[0].ID, ResourceName: resources[0].Name,
			ClientName: "Carla Soto", ClientEmail: "carla@example.com",
			StartTime: slot(10, 0), EndTime: slot(11, 0), Status: domain.BookingConfirmed,
		},
		{
			ResourceType: resources[1].Type, ResourceID: resources[1].ID, ResourceName: resources[1].Name,
			ClientName: "Diego Pérez", ClientPhone: "+56 9 5555 1234",
			StartTime: slot(15, 0), EndTime: slot(16, 30), Status: domain.BookingPending,
		},
		{
			// weekly maintenance blackout on the big room
			ResourceType: resources[0].Type, ResourceID: resources[0].ID, ResourceName: resources[0].Name,
			ClientName: "Mantención", Notes: "Limpieza profunda",
			StartTime: slot(8, 0), EndTime: slot(9, 30), Status: domain.BookingBlocked,
		},
	}
	for _, b := range bookings {
		cnt, err := bookingRepo.CountOverlapping(ctx, b.ResourceID, b.StartTime, b.EndTime, 0)
		if err != nil {
			logrus.WithError(err).Fatal("availability check failed")
		}
		if cnt > 0 {
			logrus.WithField("resource", b.ResourceName).Fatal("seed data overlaps itself")
		}
		if err := bookingRepo.Create(ctx, b); err != nil {
			logrus.WithError(err).Fatal("booking seed failed")
		}
	}

	logrus.Info("creating booking requests")
	req := &domain.BookingRequest{
		Reference:    uuid.NewString(),
		RequestType:  domain.RequestTypeBooking,
		Status:       domain.RequestNew,
		ResourceType: resources[2].Type,
		ResourceID:   resources[2].ID,
		ResourceName: resources[2].Name,
		ClientName:   "Eva Muñoz",
		ClientEmail:  "eva@example.com",
		StartTime:    slot(12, 0),
		EndTime:      slot(12, 30),
	}
	if err := requestRepo.Create(ctx, req); err != nil {
		logrus.WithError(err).Fatal("request seed failed")
	}

	logrus.Info("seed complete")
}
