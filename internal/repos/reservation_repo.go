package repos

import (
	"closetluna/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ReservationRepo struct{ db *sqlx.DB }

func NewReservationRepo(db *sqlx.DB) *ReservationRepo { return &ReservationRepo{db: db} }

func (r *ReservationRepo) Insert(res domain.Reservation) error {
	_, err := r.db.Exec(`
	  INSERT INTO reservations
	    (id, item_id, user_name, user_phone, status, payment_method, reserved_at, expires_at)
	  VALUES
	    (?,  ?,       ?,         ?,          ?,      ?,              ?,           ?)
	`, res.ID, res.ItemID, res.UserName, res.UserPhone, res.Status, res.PaymentMethod, res.ReservedAt, res.ExpiresAt)
	return err
}

func (r *ReservationRepo) Get(id string) (domain.Reservation, error) {
	var res domain.Reservation
	err := r.db.Get(&res, `
	  SELECT id, item_id, user_name, user_phone, status, payment_method, reserved_at, expires_at
	  FROM reservations
	  WHERE id = ?
	`, id)
	return res, err
}

// row flattens the reservation/item join for sqlx scanning.
type userReservationRow struct {
	ID              string  `db:"id"`
	ItemID          string  `db:"item_id"`
	UserName        string  `db:"user_name"`
	UserPhone       string  `db:"user_phone"`
	Status          string  `db:"status"`
	PaymentMethod   string  `db:"payment_method"`
	ReservedAt      string  `db:"reserved_at"`
	ExpiresAt       string  `db:"expires_at"`
	ItemName        string  `db:"item_name"`
	ItemDescription string  `db:"item_description"`
	ItemPrice       float64 `db:"item_price"`
	ItemImageURL    string  `db:"item_image_url"`
	ItemCategory    string  `db:"item_category"`
	ItemSize        string  `db:"item_size"`
	ItemAvailable   bool    `db:"item_available"`
}

// ListActiveByPhone returns active reservations for an exact phone match,
// most recent first, each joined with its item snapshot. The inner join
// drops reservations whose item no longer exists.
func (r *ReservationRepo) ListActiveByPhone(phone string) ([]domain.UserReservation, error) {
	var rows []userReservationRow
	err := r.db.Select(&rows, `
	  SELECT
	    rs.id, rs.item_id, rs.user_name, rs.user_phone, rs.status, rs.payment_method,
	    rs.reserved_at, rs.expires_at,
	    ci.name AS item_name, COALESCE(ci.description,'') AS item_description,
	    ci.price AS item_price, COALESCE(ci.image_url,'') AS item_image_url,
	    ci.category AS item_category, ci.size AS item_size, ci.available AS item_available
	  FROM reservations rs
	  JOIN clothing_items ci ON ci.id = rs.item_id
	  WHERE rs.user_phone = ? AND rs.status = 'active'
	  ORDER BY datetime(rs.reserved_at) DESC
	`, phone)
	if err != nil {
		return nil, err
	}

	out := make([]domain.UserReservation, 0, len(rows))
	for _, w := range rows {
		out = append(out, domain.UserReservation{
			Reservation: domain.Reservation{
				ID: w.ID, ItemID: w.ItemID, UserName: w.UserName, UserPhone: w.UserPhone,
				Status:        domain.ReservationStatus(w.Status),
				PaymentMethod: domain.PaymentMethod(w.PaymentMethod),
				ReservedAt:    w.ReservedAt, ExpiresAt: w.ExpiresAt,
			},
			Item: domain.ClothingItem{
				ID: w.ItemID, Name: w.ItemName, Description: w.ItemDescription,
				Price: w.ItemPrice, ImageURL: w.ItemImageURL,
				Category: w.ItemCategory, Size: w.ItemSize, Available: w.ItemAvailable,
			},
		})
	}
	return out, nil
}

// CloseAndRelease moves an active reservation to a terminal status and
// restores its item's availability in one transaction. Returns
// sql.ErrNoRows when the reservation is missing or no longer active.
func (r *ReservationRepo) CloseAndRelease(id string, to domain.ReservationStatus) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var itemID string
	if err := tx.Get(&itemID, `SELECT item_id FROM reservations WHERE id = ? AND status = 'active'`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE reservations SET status = ? WHERE id = ? AND status = 'active'`, to, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE clothing_items SET available = 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, itemID); err != nil {
		return err
	}

	return tx.Commit()
}

// ExpireDue flips active reservations past their deadline to expired and
// re-opens their items. Returns the number of reservations expired.
func (r *ReservationRepo) ExpireDue(now string) (int64, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var itemIDs []string
	if err := tx.Select(&itemIDs, `
	  SELECT item_id FROM reservations
	  WHERE status = 'active' AND datetime(expires_at) <= datetime(?)
	`, now); err != nil {
		return 0, err
	}
	if len(itemIDs) == 0 {
		return 0, tx.Commit()
	}

	res, err := tx.Exec(`
	  UPDATE reservations SET status = 'expired'
	  WHERE status = 'active' AND datetime(expires_at) <= datetime(?)
	`, now)
	if err != nil {
		return 0, err
	}

	query, args, err := sqlx.In(`UPDATE clothing_items SET available = 1, updated_at = CURRENT_TIMESTAMP WHERE id IN (?)`, itemIDs)
	if err != nil {
		return 0, err
	}
	if _, err := tx.Exec(query, args...); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}
