package repos

import (
	"github.com/jmoiron/sqlx"
)

type FavoriteRepo struct{ db *sqlx.DB }

func NewFavoriteRepo(db *sqlx.DB) *FavoriteRepo { return &FavoriteRepo{db: db} }

func (r *FavoriteRepo) Add(phone, itemID string) error {
	_, err := r.db.Exec(`
	  INSERT INTO favorites(phone, item_id, created_at)
	  VALUES(?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(phone, item_id) DO NOTHING
	`, phone, itemID)
	return err
}

func (r *FavoriteRepo) Remove(phone, itemID string) error {
	_, err := r.db.Exec(`DELETE FROM favorites WHERE phone = ? AND item_id = ?`, phone, itemID)
	return err
}

type FavoriteRow struct {
	ItemID    string  `db:"item_id"`
	Name      string  `db:"name"`
	Price     float64 `db:"price"`
	ImageURL  string  `db:"image_url"`
	Size      string  `db:"size"`
	Available bool    `db:"available"`
}

func (r *FavoriteRepo) List(phone string) ([]FavoriteRow, error) {
	var out []FavoriteRow
	err := r.db.Select(&out, `
	  SELECT ci.id AS item_id, ci.name, ci.price, COALESCE(ci.image_url,'') AS image_url,
	         ci.size, ci.available
	  FROM favorites f
	  JOIN clothing_items ci ON ci.id = f.item_id
	  WHERE f.phone = ?
	  ORDER BY datetime(f.created_at) DESC
	`, phone)
	return out, err
}
