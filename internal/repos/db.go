package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the boutique catalog if the DB is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Clothing items
CREATE TABLE IF NOT EXISTS clothing_items(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL CHECK (price >= 0),
  image_url TEXT,
  category TEXT NOT NULL,
  size TEXT NOT NULL,
  available INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_items_category ON clothing_items(category);
CREATE INDEX IF NOT EXISTS idx_items_size     ON clothing_items(size);

-- Reservations
CREATE TABLE IF NOT EXISTS reservations(
  id TEXT PRIMARY KEY,
  item_id TEXT NOT NULL,
  user_name TEXT NOT NULL,
  user_phone TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active','expired','cancelled')),
  payment_method TEXT NOT NULL CHECK (payment_method IN ('yappy','efectivo')),
  reserved_at TEXT NOT NULL,
  expires_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reservations_phone   ON reservations(user_phone);
CREATE INDEX IF NOT EXISTS idx_reservations_status  ON reservations(status);
CREATE INDEX IF NOT EXISTS idx_reservations_expires ON reservations(expires_at);

-- Favorites (session phone -> item)
CREATE TABLE IF NOT EXISTS favorites(
  phone TEXT NOT NULL,
  item_id TEXT NOT NULL REFERENCES clothing_items(id) ON DELETE CASCADE,
  created_at TEXT,
  PRIMARY KEY(phone, item_id)
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM clothing_items`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting boutique catalog")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO clothing_items(id,name,description,price,image_url,category,size,available) VALUES
	  ('1','Blusa Elegante Rosa','Hermosa blusa de encaje con mangas 3/4, perfecta para ocasiones especiales. Diseño floral delicado con acabado de alta calidad.',89.99,'/ropa1.png','Blusas','M',1),
	  ('2','Top Naranja Bohemio','Top naranja con diseño bohemio, escote en V y mangas largas. Ideal para un look casual pero sofisticado.',64.99,'/ropa2.png','Tops','S',1),
	  ('3','Vestido Floral','Vestido con estampado floral multicolor, corte midi y mangas cortas. Perfecto para primavera y verano.',129.99,'/ropa1.png','Vestidos','L',1),
	  ('4','Chaqueta de Encaje','Chaqueta corta de encaje con diseño floral, mangas 3/4 y cierre frontal. Ideal para combinar con vestidos.',99.99,'/ropa2.png','Chaquetas','M',1),
	  ('5','Blusa Romántica','Blusa romántica con detalles de encaje y mangas acampanadas. Color rosa suave para un look femenino.',79.99,'/ropa1.png','Blusas','S',1),
	  ('6','Top Casual Naranja','Top naranja de estilo casual con nudo frontal y mangas largas. Perfecto para el día a día.',54.99,'/ropa2.png','Tops','L',1)`)

	return tx.Commit()
}
