package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBDSN    string
	MediaDir string
	LogFile  string
	// Prod toggles Secure on identity cookies.
	Prod bool
	// SweepEnabled turns on the background expiry sweep. Default off:
	// the boutique releases expired reservations by hand.
	SweepEnabled  bool
	SweepInterval time.Duration
}

func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] skipping .env: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "closetluna.db" // sqlite file in project root
	}
	media := os.Getenv("MEDIA_DIR")
	if media == "" {
		media = "./web/media"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./closetluna.log"
	}
	prod := os.Getenv("ENV") == "production"

	sweep := os.Getenv("RESERVATION_SWEEP") == "on"
	interval := time.Hour
	if v := os.Getenv("RESERVATION_SWEEP_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			interval = time.Duration(n) * time.Minute
		}
	}

	cfg := Config{
		Port: port, DBDSN: dsn, MediaDir: media, LogFile: logFile,
		Prod: prod, SweepEnabled: sweep, SweepInterval: interval,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s SWEEP=%v", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.SweepEnabled)
	return cfg
}
