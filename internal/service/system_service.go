package service

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/rmehta/stock-analysis-backend/internal/database"
	"github.com/rmehta/stock-analysis-backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// VersionInfo contains application and schema version information.
type VersionInfo struct {
	AppVersion string `json:"appVersion"`
	DbVersion  string `json:"dbVersion"`
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion reports the application version and the applied schema version.
func (s *SystemService) CheckVersion() (VersionInfo, error) {
	dbVersion, err := goose.GetDBVersion(s.db)
	if err != nil {
		return VersionInfo{}, fmt.Errorf("failed to read schema version: %w", err)
	}

	return VersionInfo{
		AppVersion: version.Version,
		DbVersion:  fmt.Sprintf("%d", dbVersion),
	}, nil
}
