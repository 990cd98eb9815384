package allocation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/realtime"
)

// maxAttempts bounds the retry loop around ledger clashes before the engine
// gives up with ErrConflict.
const maxAttempts = 3

// Service is the allocation engine: it finds a qualified free driver for the
// requested vehicle model and date and commits the rental atomically. It is
// the only writer to the rental ledger for booking purposes.
type Service interface {
	BookRent(ctx context.Context, clientEmail string, vehicleID, modelID uuid.UUID, date time.Time) (*entity.Rental, error)
}

type service struct {
	repo Repository
	hub  *realtime.Hub
}

// New constructs the allocation engine. The hub may be nil; booked rentals
// are then committed without realtime notifications.
func New(repo Repository, hub *realtime.Hub) Service {
	return &service{repo: repo, hub: hub}
}

// BookRent runs the check-then-commit sequence in one transaction per
// attempt. The unique indexes on rentals guarantee that of two racing
// attempts for the same model or driver and date only one commits; the loser
// sees ErrLedgerClash and re-runs against fresh state, so it either picks
// another free driver or fails with the accurate business error.
func (s *service) BookRent(ctx context.Context, clientEmail string, vehicleID, modelID uuid.UUID, date time.Time) (*entity.Rental, error) {
	clientEmail = strings.TrimSpace(clientEmail)
	if clientEmail == "" {
		return nil, errors.New("client email required")
	}
	day := entity.Day(date)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		var booked *entity.Rental
		err := s.repo.InTx(ctx, func(tx Repository) error {
			if _, err := tx.GetModel(ctx, vehicleID, modelID); err != nil {
				return err
			}

			taken, err := tx.ModelBooked(ctx, vehicleID, modelID, day)
			if err != nil {
				return err
			}
			if taken {
				return ErrModelUnavailable
			}

			qualified, err := tx.QualifiedDrivers(ctx, vehicleID, modelID)
			if err != nil {
				return err
			}
			busy, err := tx.BusyDrivers(ctx, day)
			if err != nil {
				return err
			}

			// qualified is ordered by name, so the first free candidate is
			// the lowest name: same inputs, same assignment.
			var chosen string
			for _, name := range qualified {
				if _, isBusy := busy[name]; !isBusy {
					chosen = name
					break
				}
			}
			if chosen == "" {
				return ErrNoDriverAvailable
			}

			r := &entity.Rental{
				ID:          uuid.New(),
				RentDate:    day,
				ClientEmail: clientEmail,
				DriverName:  chosen,
				VehicleID:   vehicleID,
				ModelID:     modelID,
			}
			if err := tx.CreateRental(ctx, r); err != nil {
				return err
			}
			booked = r
			return nil
		})
		if err == nil {
			s.notify(booked)
			return booked, nil
		}
		if errors.Is(err, ErrLedgerClash) {
			continue
		}
		return nil, err
	}
	return nil, ErrConflict
}

func (s *service) notify(r *entity.Rental) {
	if s.hub == nil {
		return
	}
	payload := realtime.RentalBookedPayload{
		RentalID:    r.ID.String(),
		RentDate:    r.RentDate.Format(entity.DateLayout),
		ClientEmail: r.ClientEmail,
		DriverName:  r.DriverName,
		VehicleID:   r.VehicleID.String(),
		ModelID:     r.ModelID.String(),
	}
	_ = s.hub.NotifyClient(r.ClientEmail, "rental.booked", payload)
	_ = s.hub.NotifyDriver(r.DriverName, "rental.assigned", payload)
}
