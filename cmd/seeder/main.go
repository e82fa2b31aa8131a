package main

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

type seedVenue struct {
	id     string
	name   string
	city   string
	courts []seedCourt
}

type seedCourt struct {
	id   string
	name string
	game string
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	// Connect directly to the primary database
	dbURL := fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open primary database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to primary database: %s", err)
	}

	log.Info("Successfully connected to the primary database.")

	venues := []seedVenue{
		{id: "venue-riverside", name: "Riverside Padel", city: "Pune", courts: []seedCourt{
			{id: "riverside-court-1", name: "Court 1", game: "padel"},
			{id: "riverside-court-2", name: "Court 2", game: "padel"},
		}},
		{id: "venue-smash", name: "Smash Arena", city: "Mumbai", courts: []seedCourt{
			{id: "smash-court-1", name: "Court A", game: "pickleball"},
			{id: "smash-court-2", name: "Court B", game: "pickleball"},
			{id: "smash-court-3", name: "Court C", game: "padel"},
		}},
	}

	for _, v := range venues {
		_, err := db.Exec("INSERT OR IGNORE INTO venues (id, name, city, refreshed_at) VALUES (?, ?, ?, ?)", v.id, v.name, v.city, time.Now().Unix())
		if err != nil {
			log.Fatalf("Failed to insert venue %s: %s", v.name, err)
		}
		for _, c := range v.courts {
			_, err := db.Exec("INSERT OR IGNORE INTO courts (id, venue_id, name, game) VALUES (?, ?, ?, ?)", c.id, v.id, c.name, c.game)
			if err != nil {
				log.Fatalf("Failed to insert court %s: %s", c.name, err)
			}
		}
	}
	log.Info("Ensured seed venues and courts exist.")

	// Seed half-hour slots for the next two weeks, 06:00 through 22:00.
	const daysAhead = 14
	const slotPrice = 40000 // paise per half hour
	const batchSize = 200

	log.Info("Preparing to insert slots...", "days", daysAhead, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	valueStrings := make([]string, 0, batchSize)
	valueArgs := make([]interface{}, 0, batchSize*5)
	inserted := 0

	flush := func() {
		if len(valueStrings) == 0 {
			return
		}
		stmt := fmt.Sprintf(`
			INSERT OR IGNORE INTO slots (court_id, day, start_time, duration_mins, price)
			VALUES %s;`, strings.Join(valueStrings, ","))
		if _, err := tx.Exec(stmt, valueArgs...); err != nil {
			tx.Rollback()
			log.Fatalf("Failed to execute batch insert: %s", err)
		}
		inserted += len(valueStrings)
		valueStrings = valueStrings[:0]
		valueArgs = valueArgs[:0]
		log.Info("Inserted batch", "completed", inserted)
	}

	for day := 0; day < daysAhead; day++ {
		date := time.Now().AddDate(0, 0, day).Format("2006-01-02")
		for _, v := range venues {
			for _, c := range v.courts {
				for hour := 6; hour < 22; hour++ {
					for _, minute := range []int{0, 30} {
						valueStrings = append(valueStrings, "(?, ?, ?, ?, ?)")
						valueArgs = append(valueArgs,
							c.id,
							date,
							fmt.Sprintf("%02d:%02d", hour, minute),
							30,
							slotPrice,
						)
						if len(valueStrings) >= batchSize {
							flush()
						}
					}
				}
			}
		}
	}
	flush()

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	duration := time.Since(startTime)
	log.Info("Successfully seeded all slots.", "count", inserted, "duration", duration)
}
