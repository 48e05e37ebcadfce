package domain

type ClothingItem struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	ImageURL    string  `db:"image_url" json:"image_url"`
	Category    string  `db:"category" json:"category"`
	Size        string  `db:"size" json:"size"`
	Available   bool    `db:"available" json:"available"`
	CreatedAt   string  `db:"created_at" json:"-"`
	UpdatedAt   string  `db:"updated_at" json:"-"`
}

type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationExpired   ReservationStatus = "expired"
	ReservationCancelled ReservationStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentYappy    PaymentMethod = "yappy"
	PaymentEfectivo PaymentMethod = "efectivo"
)

type Reservation struct {
	ID            string            `db:"id" json:"id"`
	ItemID        string            `db:"item_id" json:"item_id"`
	UserName      string            `db:"user_name" json:"user_name"`
	UserPhone     string            `db:"user_phone" json:"user_phone"`
	Status        ReservationStatus `db:"status" json:"status"`
	PaymentMethod PaymentMethod     `db:"payment_method" json:"payment_method"`
	ReservedAt    string            `db:"reserved_at" json:"reserved_at"` // RFC3339 UTC
	ExpiresAt     string            `db:"expires_at" json:"expires_at"`   // RFC3339 UTC
}

// UserReservation is a reservation joined with a snapshot of its item,
// as shown on the reservations page. The JSON key mirrors the table name
// the frontend already consumes.
type UserReservation struct {
	Reservation
	Item ClothingItem `json:"clothing_items"`
}

// UserSession is the plaintext name+phone identity persisted across visits.
type UserSession struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
