package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFixtures loads SQL fixture files into the database
func LoadFixtures(db *sql.DB, fixturesPath string, files []string) error {
	for _, file := range files {
		path := filepath.Join(fixturesPath, file)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return nil
}

// GetStationIDByName returns the ID of a station given its unique name
func GetStationIDByName(db *sql.DB, name string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"SELECT id FROM stations WHERE name = $1", name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("get station ID by name %q: %w", name, err)
	}
	return id, nil
}
