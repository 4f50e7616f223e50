package services

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

// PostgresStorage handles PostgreSQL operations
type PostgresStorage struct {
	db *sql.DB
}

var postgresInstance *PostgresStorage

// InitializePostgres sets up PostgreSQL storage
func InitializePostgres(connectionString string) error {
	pgStorage := &PostgresStorage{}
	if err := pgStorage.Connect(connectionString); err != nil {
		return err
	}
	postgresInstance = pgStorage
	return nil
}

// GetPostgres returns the process-wide storage instance.
func GetPostgres() *PostgresStorage {
	return postgresInstance
}

// Connect establishes connection to PostgreSQL
func (p *PostgresStorage) Connect(connectionString string) error {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %v", err)
	}

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping PostgreSQL: %v", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	p.db = db

	// Create tables
	if err := p.createTables(); err != nil {
		return fmt.Errorf("failed to create tables: %v", err)
	}

	log.Println("Connected to PostgreSQL successfully")
	return nil
}

func (p *PostgresStorage) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
        id UUID PRIMARY KEY,
        email VARCHAR(255) UNIQUE NOT NULL,
        password_hash VARCHAR(255) NOT NULL,
        created_at TIMESTAMPTZ DEFAULT NOW()
    );`,
		`CREATE TABLE IF NOT EXISTS folders (
        id UUID PRIMARY KEY,
        seq BIGSERIAL,
        name VARCHAR(255) NOT NULL,
        owner_id UUID NOT NULL,
        parent_id UUID,
        is_deleted BOOLEAN DEFAULT false,
        created_at TIMESTAMPTZ DEFAULT NOW()
    );`,
		`CREATE TABLE IF NOT EXISTS files (
        id UUID PRIMARY KEY,
        name VARCHAR(255) NOT NULL,
        owner_id UUID NOT NULL,
        folder_id UUID,
        storage_path VARCHAR(500),
        size BIGINT DEFAULT 0,
        mime_type VARCHAR(255),
        is_uploaded BOOLEAN DEFAULT false,
        is_deleted BOOLEAN DEFAULT false,
        scan_status VARCHAR(50) DEFAULT 'pending',
        scanned_at TIMESTAMPTZ,
        preview_path VARCHAR(500),
        created_at TIMESTAMPTZ DEFAULT NOW()
    );`,
		`CREATE TABLE IF NOT EXISTS shares (
        id UUID PRIMARY KEY,
        folder_id UUID,
        file_id UUID,
        shared_with_user_id UUID NOT NULL,
        role VARCHAR(20) NOT NULL,
        created_at TIMESTAMPTZ DEFAULT NOW()
    );`,
		`CREATE TABLE IF NOT EXISTS link_shares (
        id UUID PRIMARY KEY,
        folder_id UUID NOT NULL,
        token VARCHAR(64) UNIQUE NOT NULL,
        expires_at TIMESTAMPTZ,
        created_at TIMESTAMPTZ DEFAULT NOW()
    );`,
	}

	for _, query := range queries {
		if _, err := p.db.Exec(query); err != nil {
			return err
		}
	}

	// Indexes
	indexQuery := `
    CREATE INDEX IF NOT EXISTS idx_folders_owner_id ON folders(owner_id);
    CREATE INDEX IF NOT EXISTS idx_folders_parent_id ON folders(parent_id);
    CREATE INDEX IF NOT EXISTS idx_files_owner_id ON files(owner_id);
    CREATE INDEX IF NOT EXISTS idx_files_folder_id ON files(folder_id);
    CREATE INDEX IF NOT EXISTS idx_files_created_at ON files(created_at DESC);
    CREATE INDEX IF NOT EXISTS idx_shares_shared_with ON shares(shared_with_user_id);
    CREATE INDEX IF NOT EXISTS idx_link_shares_token ON link_shares(token);
    `

	_, err := p.db.Exec(indexQuery)
	return err
}

func (p *PostgresStorage) getStats() map[string]interface{} {
	var totalFiles int
	var totalSize int64
	var latestUpload time.Time

	err := p.db.QueryRow(`
        SELECT COUNT(*), COALESCE(SUM(size), 0), COALESCE(MAX(created_at), NOW())
        FROM files WHERE is_uploaded = true
    `).Scan(&totalFiles, &totalSize, &latestUpload)

	if err != nil {
		log.Printf("Error getting stats: %v", err)
		return map[string]interface{}{}
	}

	return map[string]interface{}{
		"total_files":   totalFiles,
		"total_size_mb": float64(totalSize) / (1024 * 1024),
		"latest_upload": latestUpload,
	}
}

// GetStats exposes coarse storage counters for the health/stats endpoints.
func GetStats() map[string]interface{} {
	if postgresInstance == nil {
		return map[string]interface{}{}
	}
	return postgresInstance.getStats()
}
