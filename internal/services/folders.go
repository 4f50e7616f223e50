package services

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/cloudlearn-droid/CloudVault/internal/models"
	"github.com/google/uuid"
)

const folderColumns = `id, name, owner_id, parent_id, is_deleted, created_at`

func scanFolder(row interface{ Scan(...interface{}) error }) (models.Folder, error) {
	var folder models.Folder
	err := row.Scan(
		&folder.ID,
		&folder.Name,
		&folder.OwnerID,
		&folder.ParentID,
		&folder.IsDeleted,
		&folder.CreatedAt,
	)
	return folder, err
}

// CreateFolder creates a folder for the owner. When parentID is set, the
// parent must exist, belong to the same owner and not be in the trash.
func CreateFolder(ownerID, name string, parentID *string) (models.Folder, error) {
	if name == "" {
		return models.Folder{}, ErrInvalidInput
	}

	if parentID != nil {
		if _, err := GetFolder(ownerID, *parentID); err != nil {
			return models.Folder{}, err
		}
	}

	folder := models.Folder{
		ID:        uuid.New().String(),
		Name:      name,
		OwnerID:   ownerID,
		ParentID:  parentID,
		CreatedAt: time.Now(),
	}

	_, err := postgresInstance.db.Exec(
		`INSERT INTO folders (id, name, owner_id, parent_id, created_at) VALUES ($1, $2, $3, $4, $5)`,
		folder.ID, folder.Name, folder.OwnerID, folder.ParentID, folder.CreatedAt,
	)
	if err != nil {
		log.Printf("Error creating folder: %v", err)
		return models.Folder{}, err
	}

	return folder, nil
}

// GetFolder fetches a non-deleted folder owned by the caller.
func GetFolder(ownerID, folderID string) (models.Folder, error) {
	folder, err := scanFolder(postgresInstance.db.QueryRow(
		`SELECT `+folderColumns+` FROM folders WHERE id = $1 AND owner_id = $2 AND is_deleted = false`,
		folderID, ownerID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Folder{}, ErrNotFound
		}
		log.Printf("Error getting folder: %v", err)
		return models.Folder{}, err
	}
	return folder, nil
}

// getFolderAnyState fetches an owned folder regardless of its trash state.
// Lifecycle transitions need to see trashed rows too.
func getFolderAnyState(ownerID, folderID string) (models.Folder, error) {
	folder, err := scanFolder(postgresInstance.db.QueryRow(
		`SELECT `+folderColumns+` FROM folders WHERE id = $1 AND owner_id = $2`,
		folderID, ownerID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Folder{}, ErrNotFound
		}
		log.Printf("Error getting folder: %v", err)
		return models.Folder{}, err
	}
	return folder, nil
}

// ListFolders returns the owner's non-deleted folders under parentID.
// A nil parentID selects root-level folders. Newest first.
func ListFolders(ownerID string, parentID *string) ([]models.Folder, error) {
	query := `SELECT ` + folderColumns + ` FROM folders
        WHERE owner_id = $1 AND is_deleted = false AND parent_id IS NULL
        ORDER BY seq DESC`
	args := []interface{}{ownerID}

	if parentID != nil {
		query = `SELECT ` + folderColumns + ` FROM folders
            WHERE owner_id = $1 AND is_deleted = false AND parent_id = $2
            ORDER BY seq DESC`
		args = append(args, *parentID)
	}

	rows, err := postgresInstance.db.Query(query, args...)
	if err != nil {
		log.Printf("Error listing folders: %v", err)
		return []models.Folder{}, err
	}
	defer rows.Close()

	folders := []models.Folder{}
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			log.Printf("Error scanning folder row: %v", err)
			continue
		}
		folders = append(folders, folder)
	}
	return folders, rows.Err()
}

// loadOwnerFolders snapshots every folder row of one owner, trashed rows
// included. Lifecycle traversals build their adjacency index from this.
func loadOwnerFolders(ownerID string) ([]models.Folder, error) {
	rows, err := postgresInstance.db.Query(
		`SELECT `+folderColumns+` FROM folders WHERE owner_id = $1`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			return nil, err
		}
		folders = append(folders, folder)
	}
	return folders, rows.Err()
}
