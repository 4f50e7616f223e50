package services

import (
	"log"

	"github.com/cloudlearn-droid/CloudVault/internal/models"
)

// Search matches the query as a case-insensitive substring against the
// owner's live folders and files. No ranking, no pagination.
func Search(ownerID, query string) ([]models.Folder, []models.File, error) {
	pattern := "%" + query + "%"

	folderRows, err := postgresInstance.db.Query(
		`SELECT `+folderColumns+` FROM folders
         WHERE owner_id = $1 AND is_deleted = false AND name ILIKE $2
         ORDER BY seq DESC`,
		ownerID, pattern,
	)
	if err != nil {
		log.Printf("Error searching folders: %v", err)
		return nil, nil, err
	}
	defer folderRows.Close()

	folders := []models.Folder{}
	for folderRows.Next() {
		folder, err := scanFolder(folderRows)
		if err != nil {
			return nil, nil, err
		}
		folders = append(folders, folder)
	}
	if err := folderRows.Err(); err != nil {
		return nil, nil, err
	}

	fileRows, err := postgresInstance.db.Query(
		`SELECT `+fileColumns+` FROM files
         WHERE owner_id = $1 AND is_deleted = false AND is_uploaded = true AND name ILIKE $2
         ORDER BY created_at DESC`,
		ownerID, pattern,
	)
	if err != nil {
		log.Printf("Error searching files: %v", err)
		return nil, nil, err
	}
	defer fileRows.Close()

	files := []models.File{}
	for fileRows.Next() {
		file, err := scanFile(fileRows)
		if err != nil {
			return nil, nil, err
		}
		files = append(files, file)
	}

	return folders, files, fileRows.Err()
}
