package services

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/cloudlearn-droid/CloudVault/internal/models"
	"github.com/google/uuid"
)

// ShareFolder grants targetUserID access to a folder. Only the folder's
// owner may share it. Duplicate grants are allowed; the newest one wins in
// any UI that cares.
func ShareFolder(ownerID, folderID, targetUserID, role string) (models.Share, error) {
	if !models.ValidShareRole(role) {
		return models.Share{}, ErrInvalidInput
	}

	if _, err := getFolderAnyState(ownerID, folderID); err != nil {
		return models.Share{}, ErrForbidden
	}

	share := models.Share{
		ID:               uuid.New().String(),
		FolderID:         &folderID,
		SharedWithUserID: targetUserID,
		Role:             role,
		CreatedAt:        time.Now(),
	}

	_, err := postgresInstance.db.Exec(
		`INSERT INTO shares (id, folder_id, file_id, shared_with_user_id, role, created_at)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		share.ID, share.FolderID, share.FileID, share.SharedWithUserID, share.Role, share.CreatedAt,
	)
	if err != nil {
		log.Printf("Error creating share: %v", err)
		return models.Share{}, err
	}

	return share, nil
}

// ListSharedWithMe returns the non-deleted folders other users shared with
// this user.
func ListSharedWithMe(userID string) ([]models.Folder, error) {
	rows, err := postgresInstance.db.Query(
		`SELECT DISTINCT f.id, f.name, f.owner_id, f.parent_id, f.is_deleted, f.created_at
         FROM folders f
         JOIN shares s ON s.folder_id = f.id
         WHERE s.shared_with_user_id = $1 AND f.is_deleted = false`,
		userID,
	)
	if err != nil {
		log.Printf("Error listing shared folders: %v", err)
		return []models.Folder{}, err
	}
	defer rows.Close()

	folders := []models.Folder{}
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			log.Printf("Error scanning shared folder row: %v", err)
			continue
		}
		folders = append(folders, folder)
	}
	return folders, rows.Err()
}

// CreateLinkShare mints an anonymous bearer token for one owned folder.
func CreateLinkShare(ownerID, folderID string, ttl time.Duration) (models.LinkShare, error) {
	if _, err := getFolderAnyState(ownerID, folderID); err != nil {
		return models.LinkShare{}, err
	}

	link := models.LinkShare{
		ID:        uuid.New().String(),
		FolderID:  folderID,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(ttl),
		CreatedAt: time.Now(),
	}

	_, err := postgresInstance.db.Exec(
		`INSERT INTO link_shares (id, folder_id, token, expires_at, created_at)
         VALUES ($1, $2, $3, $4, $5)`,
		link.ID, link.FolderID, link.Token, link.ExpiresAt, link.CreatedAt,
	)
	if err != nil {
		log.Printf("Error creating link share: %v", err)
		return models.LinkShare{}, err
	}

	return link, nil
}

// ResolveLinkShare resolves an anonymous token to its folder. Unknown or
// expired tokens and trashed folders all read as NotFound; possession of a
// live token is the only capability check.
func ResolveLinkShare(token string) (models.Folder, error) {
	var link models.LinkShare
	err := postgresInstance.db.QueryRow(
		`SELECT id, folder_id, token, expires_at, created_at FROM link_shares WHERE token = $1`,
		token,
	).Scan(&link.ID, &link.FolderID, &link.Token, &link.ExpiresAt, &link.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Folder{}, ErrNotFound
		}
		log.Printf("Error resolving link share: %v", err)
		return models.Folder{}, err
	}

	if time.Now().After(link.ExpiresAt) {
		return models.Folder{}, ErrNotFound
	}

	folder, err := scanFolder(postgresInstance.db.QueryRow(
		`SELECT `+folderColumns+` FROM folders WHERE id = $1 AND is_deleted = false`,
		link.FolderID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Folder{}, ErrNotFound
		}
		log.Printf("Error loading linked folder: %v", err)
		return models.Folder{}, err
	}
	return folder, nil
}
