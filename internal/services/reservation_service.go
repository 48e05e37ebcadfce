package services

import (
	"database/sql"
	"errors"
	"time"

	"closetluna/internal/clock"
	"closetluna/internal/domain"

	"github.com/google/uuid"
)

// ReservationWindow is how long a reservation stays payable. The UI talks
// about "8 a 10 días" but the computed deadline is a fixed 10-day offset.
const ReservationWindow = 10 * 24 * time.Hour

// ReservableItemStore is what the engine needs from item storage.
type ReservableItemStore interface {
	Get(id string) (domain.ClothingItem, error)
	Reserve(id string) (bool, error)
	SetAvailable(id string, available bool) error
}

// ReservationStore persists reservation records.
type ReservationStore interface {
	Insert(domain.Reservation) error
	Get(id string) (domain.Reservation, error)
	ListActiveByPhone(phone string) ([]domain.UserReservation, error)
	CloseAndRelease(id string, to domain.ReservationStatus) error
	ExpireDue(now string) (int64, error)
}

type ReservationService struct {
	Items ReservableItemStore
	Resv  ReservationStore
	Clock clock.Clock
}

func NewReservationService(items ReservableItemStore, resv ReservationStore, clk clock.Clock) *ReservationService {
	return &ReservationService{Items: items, Resv: resv, Clock: clk}
}

// Create reserves an item for a customer. The availability flip is an
// atomic conditional update in storage, so two concurrent calls for the
// same item cannot both succeed.
func (s *ReservationService) Create(itemID, userName, userPhone string, method domain.PaymentMethod) (domain.Reservation, error) {
	if userName == "" || userPhone == "" {
		return domain.Reservation{}, domain.ErrInvalidInput
	}
	if method != domain.PaymentYappy && method != domain.PaymentEfectivo {
		return domain.Reservation{}, domain.ErrInvalidInput
	}

	if _, err := s.Items.Get(itemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reservation{}, domain.ErrItemNotFound
		}
		return domain.Reservation{}, err
	}

	ok, err := s.Items.Reserve(itemID)
	if err != nil {
		return domain.Reservation{}, err
	}
	if !ok {
		return domain.Reservation{}, domain.ErrItemUnavailable
	}

	now := s.Clock.Now()
	res := domain.Reservation{
		ID:            uuid.NewString(),
		ItemID:        itemID,
		UserName:      userName,
		UserPhone:     userPhone,
		Status:        domain.ReservationActive,
		PaymentMethod: method,
		ReservedAt:    now.Format(time.RFC3339),
		ExpiresAt:     now.Add(ReservationWindow).Format(time.RFC3339),
	}
	if err := s.Resv.Insert(res); err != nil {
		// Put the item back so a failed insert doesn't strand it.
		_ = s.Items.SetAvailable(itemID, true)
		return domain.Reservation{}, err
	}
	return res, nil
}

// ListByPhone returns the caller's active reservations with item
// snapshots, most recent first. No reservations is an empty list, not an
// error.
func (s *ReservationService) ListByPhone(phone string) ([]domain.UserReservation, error) {
	rows, err := s.Resv.ListActiveByPhone(phone)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.UserReservation{}
	}
	return rows, nil
}

// Cancel releases an active reservation owned by the given phone. A
// reservation that is missing, inactive, or owned by someone else reports
// ErrNotFound so callers learn nothing about other customers.
func (s *ReservationService) Cancel(id, phone string) error {
	res, err := s.Resv.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	if res.UserPhone != phone || res.Status != domain.ReservationActive {
		return domain.ErrNotFound
	}
	if err := s.Resv.CloseAndRelease(id, domain.ReservationCancelled); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

// ReleaseExpired flips reservations past their deadline to expired and
// restores their items. Run from the optional background sweep.
func (s *ReservationService) ReleaseExpired() (int64, error) {
	return s.Resv.ExpireDue(s.Clock.Now().Format(time.RFC3339))
}
