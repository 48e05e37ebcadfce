package repos

import (
	"closetluna/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ItemRepo struct{ db *sqlx.DB }

func NewItemRepo(db *sqlx.DB) *ItemRepo { return &ItemRepo{db: db} }

// List returns the full catalog in insertion order. Filtering happens in the
// service layer so the catalog page can reuse one read for results and
// filter controls.
func (r *ItemRepo) List() ([]domain.ClothingItem, error) {
	var out []domain.ClothingItem
	err := r.db.Select(&out, `
	  SELECT
	    id, name, COALESCE(description,'') AS description, price,
	    COALESCE(image_url,'') AS image_url, category, size, available,
	    COALESCE(created_at,'') AS created_at, COALESCE(updated_at,'') AS updated_at
	  FROM clothing_items
	  ORDER BY id
	`)
	return out, err
}

func (r *ItemRepo) Get(id string) (domain.ClothingItem, error) {
	var it domain.ClothingItem
	err := r.db.Get(&it, `
	  SELECT
	    id, name, COALESCE(description,'') AS description, price,
	    COALESCE(image_url,'') AS image_url, category, size, available,
	    COALESCE(created_at,'') AS created_at, COALESCE(updated_at,'') AS updated_at
	  FROM clothing_items
	  WHERE id = ?
	`, id)
	return it, err
}

// Reserve atomically flips available from 1 to 0. Returns false when the
// item was already taken, which keeps "check then flip" safe under
// concurrent requests.
func (r *ItemRepo) Reserve(id string) (bool, error) {
	res, err := r.db.Exec(`
	  UPDATE clothing_items
	  SET available = 0, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ? AND available = 1
	`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *ItemRepo) SetAvailable(id string, available bool) error {
	_, err := r.db.Exec(`
	  UPDATE clothing_items
	  SET available = ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ?
	`, available, id)
	return err
}
