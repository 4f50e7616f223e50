package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cloudlearn-droid/CloudVault/internal/models"
	"github.com/google/uuid"
)

const fileColumns = `id, name, owner_id, folder_id, COALESCE(storage_path, ''), size,
        COALESCE(mime_type, ''), is_uploaded, is_deleted, scan_status, COALESCE(preview_path, ''), created_at`

func scanFile(row interface{ Scan(...interface{}) error }) (models.File, error) {
	var file models.File
	err := row.Scan(
		&file.ID,
		&file.Name,
		&file.OwnerID,
		&file.FolderID,
		&file.StoragePath,
		&file.Size,
		&file.MimeType,
		&file.IsUploaded,
		&file.IsDeleted,
		&file.ScanStatus,
		&file.PreviewPath,
		&file.CreatedAt,
	)
	return file, err
}

// BuildStoragePath returns the object locator for a fresh upload. Locators
// are namespaced by owner so bulk cleanup can go by prefix, and carry a
// random component so equal filenames never collide.
func BuildStoragePath(ownerID, filename string) string {
	return fmt.Sprintf("%s/%s_%s", ownerID, uuid.New().String(), filename)
}

// RegisterUpload reserves a metadata row for an incoming upload. The row is
// created with is_uploaded = false and only becomes visible to listings once
// MarkFileUploaded confirms the object write.
func RegisterUpload(ownerID, name string, folderID *string, size int64, mimeType string) (models.File, error) {
	if name == "" {
		return models.File{}, ErrInvalidInput
	}
	if folderID != nil {
		if _, err := GetFolder(ownerID, *folderID); err != nil {
			return models.File{}, err
		}
	}

	file := models.File{
		ID:          uuid.New().String(),
		Name:        name,
		OwnerID:     ownerID,
		FolderID:    folderID,
		StoragePath: BuildStoragePath(ownerID, name),
		Size:        size,
		MimeType:    mimeType,
		ScanStatus:  "pending",
		CreatedAt:   time.Now(),
	}

	_, err := postgresInstance.db.Exec(
		`INSERT INTO files (id, name, owner_id, folder_id, storage_path, size, mime_type, is_uploaded, scan_status, preview_path, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		file.ID, file.Name, file.OwnerID, file.FolderID, file.StoragePath,
		file.Size, file.MimeType, file.IsUploaded, file.ScanStatus, file.PreviewPath, file.CreatedAt,
	)
	if err != nil {
		log.Printf("Error registering upload %s: %v", file.Name, err)
		return models.File{}, err
	}
	return file, nil
}

// DiscardUpload drops a reserved row whose object write failed.
func DiscardUpload(fileID, ownerID string) error {
	_, err := postgresInstance.db.Exec(
		`DELETE FROM files WHERE id = $1 AND owner_id = $2 AND is_uploaded = false`,
		fileID, ownerID,
	)
	return err
}

// GetUploadedFile fetches a live (uploaded, non-deleted) file owned by the
// caller. This is the lookup behind listing, download and search paths.
func GetUploadedFile(ownerID, fileID string) (models.File, error) {
	file, err := scanFile(postgresInstance.db.QueryRow(
		`SELECT `+fileColumns+` FROM files
         WHERE id = $1 AND owner_id = $2 AND is_deleted = false AND is_uploaded = true`,
		fileID, ownerID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.File{}, ErrNotFound
		}
		log.Printf("Error getting file: %v", err)
		return models.File{}, err
	}
	return file, nil
}

// getFileAnyState fetches an owned file regardless of trash state.
func getFileAnyState(ownerID, fileID string) (models.File, error) {
	file, err := scanFile(postgresInstance.db.QueryRow(
		`SELECT `+fileColumns+` FROM files WHERE id = $1 AND owner_id = $2`,
		fileID, ownerID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.File{}, ErrNotFound
		}
		log.Printf("Error getting file: %v", err)
		return models.File{}, err
	}
	return file, nil
}

// ListFiles returns the owner's live files inside folderID (nil = root
// level), newest first. Placeholder rows never show up here.
func ListFiles(ownerID string, folderID *string) ([]models.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files
        WHERE owner_id = $1 AND is_deleted = false AND is_uploaded = true AND folder_id IS NULL
        ORDER BY created_at DESC`
	args := []interface{}{ownerID}

	if folderID != nil {
		query = `SELECT ` + fileColumns + ` FROM files
            WHERE owner_id = $1 AND is_deleted = false AND is_uploaded = true AND folder_id = $2
            ORDER BY created_at DESC`
		args = append(args, *folderID)
	}

	rows, err := postgresInstance.db.Query(query, args...)
	if err != nil {
		log.Printf("Error listing files: %v", err)
		return []models.File{}, err
	}
	defer rows.Close()

	files := []models.File{}
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			log.Printf("Error scanning file row: %v", err)
			continue
		}
		files = append(files, file)
	}
	return files, rows.Err()
}

// MarkFileUploaded flips the record live once the object landed in storage.
func MarkFileUploaded(fileID, ownerID string) error {
	_, err := postgresInstance.db.Exec(
		`UPDATE files SET is_uploaded = true WHERE id = $1 AND owner_id = $2`,
		fileID, ownerID,
	)
	return err
}

// UpdateFileScanStatus records the outcome of a virus scan.
func UpdateFileScanStatus(fileID, ownerID, status string, scannedAt time.Time) error {
	_, err := postgresInstance.db.Exec(
		`UPDATE files SET scan_status = $1, scanned_at = $2 WHERE id = $3 AND owner_id = $4`,
		status, scannedAt, fileID, ownerID,
	)
	return err
}

// SetFilePreview stores the preview object locator once a thumbnail exists.
func SetFilePreview(fileID, ownerID, previewPath string) error {
	_, err := postgresInstance.db.Exec(
		`UPDATE files SET preview_path = $1 WHERE id = $2 AND owner_id = $3`,
		previewPath, fileID, ownerID,
	)
	return err
}

// GetUserFileStats counts an owner's live files and their total size.
func GetUserFileStats(ownerID string) (models.UserFileStats, error) {
	var stats models.UserFileStats
	err := postgresInstance.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(size), 0) FROM files
         WHERE owner_id = $1 AND is_deleted = false AND is_uploaded = true`,
		ownerID,
	).Scan(&stats.FileCount, &stats.TotalSize)
	if err != nil {
		log.Printf("Error counting user files: %v", err)
		return models.UserFileStats{}, err
	}
	return stats, nil
}
