package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
)

// Store persists generated itineraries so they can be re-downloaded as PDFs.
// Travel options themselves are never stored; they are rebuilt fresh on every
// request.
type Store struct {
	db *sql.DB
}

type Itinerary struct {
	ID           string    `json:"id"`
	City         string    `json:"city"`
	Budget       string    `json:"budget"`
	Days         int       `json:"days"`
	TravelerType string    `json:"traveler_type"`
	Preferences  string    `json:"preferences"`
	Narrative    string    `json:"narrative"`
	PDFData      []byte    `json:"pdf_data,omitempty"` // rendered lazily, cached in the row
	CreatedAt    time.Time `json:"created_at"`
}

// Open connects to PostgreSQL and runs migrations. The database may take a
// moment to accept connections on managed platforms, so the ping is retried.
func Open(databaseURL string) (*Store, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		log.Printf("⏳ Waiting for database... attempt %d/10: %v", i+1, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		db.Close()
		return nil, err
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS itineraries (
			id            TEXT PRIMARY KEY,
			city          TEXT NOT NULL,
			budget        TEXT NOT NULL,
			days          INTEGER NOT NULL,
			traveler_type TEXT,
			preferences   TEXT,
			narrative     TEXT NOT NULL,
			pdf_data      BYTEA,
			created_at    TIMESTAMPTZ DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_itineraries_created_at
			ON itineraries(created_at DESC)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) SaveItinerary(i *Itinerary) error {
	_, err := s.db.Exec(`
		INSERT INTO itineraries (id, city, budget, days, traveler_type, preferences, narrative)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		i.ID, i.City, i.Budget, i.Days, i.TravelerType, i.Preferences, i.Narrative)
	return err
}

func (s *Store) GetItinerary(id string) (*Itinerary, error) {
	i := &Itinerary{}
	err := s.db.QueryRow(`
		SELECT id, city, budget, days, traveler_type, preferences, narrative, pdf_data, created_at
		FROM itineraries WHERE id = $1`, id).
		Scan(&i.ID, &i.City, &i.Budget, &i.Days, &i.TravelerType,
			&i.Preferences, &i.Narrative, &i.PDFData, &i.CreatedAt)
	if err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Store) UpdateItineraryPDF(id string, pdfData []byte) error {
	_, err := s.db.Exec(`
		UPDATE itineraries SET pdf_data = $1 WHERE id = $2`,
		pdfData, id)
	return err
}

func (s *Store) Ping() error {
	return s.db.Ping()
}

func (s *Store) Close() error {
	return s.db.Close()
}
