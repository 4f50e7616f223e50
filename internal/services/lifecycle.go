package services

import (
	"log"
	"sort"

	"github.com/cloudlearn-droid/CloudVault/internal/models"
	"github.com/lib/pq"
)

// The cascade logic is split in two layers: pure planning over an in-memory
// snapshot of the owner's folder forest (buildChildIndex, collectSubtree,
// purgeOrder, trashVisible*), and transactional execution of the plan. Every
// state-changing protocol commits all of its row mutations in one sql.Tx.

// buildChildIndex maps each parent id to its direct child folder ids.
// Root folders are indexed under the empty string.
func buildChildIndex(folders []models.Folder) map[string][]string {
	index := make(map[string][]string, len(folders))
	for _, f := range folders {
		parent := ""
		if f.ParentID != nil {
			parent = *f.ParentID
		}
		index[parent] = append(index[parent], f.ID)
	}
	return index
}

// collectSubtree returns rootID and every descendant folder id, parents
// before children. Iterative breadth-first walk, no recursion.
func collectSubtree(rootID string, childIndex map[string][]string) []string {
	ids := []string{rootID}
	for cursor := 0; cursor < len(ids); cursor++ {
		ids = append(ids, childIndex[ids[cursor]]...)
	}
	return ids
}

// purgeOrder reverses a collectSubtree result so children are purged before
// their parents and no dangling parent references survive mid-purge.
func purgeOrder(ids []string) []string {
	ordered := make([]string, len(ids))
	for i, id := range ids {
		ordered[len(ids)-1-i] = id
	}
	return ordered
}

// trashVisibleFolders picks the deleted folders that surface in the trash
// view: a deleted folder shows only if it is a root or its immediate parent
// is not itself deleted, so each trashed subtree surfaces once. Newest first.
func trashVisibleFolders(folders []models.Folder) []models.Folder {
	deleted := make(map[string]bool, len(folders))
	for _, f := range folders {
		if f.IsDeleted {
			deleted[f.ID] = true
		}
	}

	visible := []models.Folder{}
	for _, f := range folders {
		if !f.IsDeleted {
			continue
		}
		if f.ParentID != nil && deleted[*f.ParentID] {
			continue
		}
		visible = append(visible, f)
	}

	sort.Slice(visible, func(i, j int) bool {
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})
	return visible
}

// trashVisibleFiles applies the same topmost rule to deleted files: hidden
// while their containing folder is deleted too.
func trashVisibleFiles(files []models.File, folders []models.Folder) []models.File {
	deleted := make(map[string]bool, len(folders))
	for _, f := range folders {
		if f.IsDeleted {
			deleted[f.ID] = true
		}
	}

	visible := []models.File{}
	for _, f := range files {
		if !f.IsDeleted {
			continue
		}
		if f.FolderID != nil && deleted[*f.FolderID] {
			continue
		}
		visible = append(visible, f)
	}

	sort.Slice(visible, func(i, j int) bool {
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})
	return visible
}

// SoftDeleteFolder moves a folder subtree to the trash: the target folder,
// every descendant folder and every file directly contained in any of them
// flip to deleted together, or not at all.
func SoftDeleteFolder(ownerID, folderID string) error {
	folder, err := getFolderAnyState(ownerID, folderID)
	if err != nil {
		return err
	}
	if folder.IsDeleted {
		return ErrNotFound
	}
	return setSubtreeDeleted(ownerID, folderID, true)
}

// RestoreFolder is the exact inverse of SoftDeleteFolder on the same
// subtree. The target must currently be in the trash; its own parent may
// still be deleted — the trash view compensates for that.
func RestoreFolder(ownerID, folderID string) error {
	folder, err := getFolderAnyState(ownerID, folderID)
	if err != nil {
		return err
	}
	if !folder.IsDeleted {
		return ErrNotFound
	}
	return setSubtreeDeleted(ownerID, folderID, false)
}

func setSubtreeDeleted(ownerID, folderID string, deleted bool) error {
	folders, err := loadOwnerFolders(ownerID)
	if err != nil {
		return err
	}
	ids := collectSubtree(folderID, buildChildIndex(folders))

	tx, err := postgresInstance.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`UPDATE files SET is_deleted = $1 WHERE owner_id = $2 AND folder_id = ANY($3::uuid[])`,
		deleted, ownerID, pq.Array(ids),
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		`UPDATE folders SET is_deleted = $1 WHERE owner_id = $2 AND id = ANY($3::uuid[])`,
		deleted, ownerID, pq.Array(ids),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// ListTrash returns the owner's trash view: topmost deleted folders and
// deleted files whose containing folder is not itself deleted.
func ListTrash(ownerID string) ([]models.Folder, []models.File, error) {
	folders, err := loadOwnerFolders(ownerID)
	if err != nil {
		return nil, nil, err
	}

	rows, err := postgresInstance.db.Query(
		`SELECT `+fileColumns+` FROM files
         WHERE owner_id = $1 AND is_deleted = true AND is_uploaded = true`,
		ownerID,
	)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var deletedFiles []models.File
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, nil, err
		}
		deletedFiles = append(deletedFiles, file)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return trashVisibleFolders(folders), trashVisibleFiles(deletedFiles, folders), nil
}

// PurgeFolder permanently deletes a trashed folder subtree: link shares,
// shares, file rows (with best-effort object removal) and folder rows go,
// children before parents, in one transaction. An unreachable storage
// backend never blocks the metadata purge.
func PurgeFolder(ownerID, folderID string) error {
	folder, err := getFolderAnyState(ownerID, folderID)
	if err != nil {
		return err
	}
	if !folder.IsDeleted {
		// Only trash items can be purged.
		return ErrNotFound
	}

	folders, err := loadOwnerFolders(ownerID)
	if err != nil {
		return err
	}
	ordered := purgeOrder(collectSubtree(folderID, buildChildIndex(folders)))

	tx, err := postgresInstance.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, id := range ordered {
		// Collect object locators before the rows disappear.
		rows, err := tx.Query(
			`SELECT COALESCE(storage_path, ''), COALESCE(preview_path, '') FROM files
             WHERE folder_id = $1 AND owner_id = $2`,
			id, ownerID,
		)
		if err != nil {
			return err
		}
		var paths []string
		for rows.Next() {
			var storagePath, previewPath string
			if err := rows.Scan(&storagePath, &previewPath); err != nil {
				rows.Close()
				return err
			}
			if storagePath != "" {
				paths = append(paths, storagePath)
			}
			if previewPath != "" {
				paths = append(paths, previewPath)
			}
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		removeObjectsQuiet(paths)

		if _, err := tx.Exec(`DELETE FROM link_shares WHERE folder_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(
			`DELETE FROM shares WHERE folder_id = $1
             OR file_id IN (SELECT id FROM files WHERE folder_id = $1 AND owner_id = $2)`,
			id, ownerID,
		); err != nil {
			return err
		}
		if _, err := tx.Exec(
			`DELETE FROM files WHERE folder_id = $1 AND owner_id = $2`, id, ownerID,
		); err != nil {
			return err
		}
		if _, err := tx.Exec(
			`DELETE FROM folders WHERE id = $1 AND owner_id = $2`, id, ownerID,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SoftDeleteFile moves a single live file to the trash.
func SoftDeleteFile(ownerID, fileID string) error {
	if _, err := GetUploadedFile(ownerID, fileID); err != nil {
		return err
	}
	_, err := postgresInstance.db.Exec(
		`UPDATE files SET is_deleted = true WHERE id = $1 AND owner_id = $2`,
		fileID, ownerID,
	)
	return err
}

// RestoreFile brings a single trashed file back.
func RestoreFile(ownerID, fileID string) error {
	file, err := getFileAnyState(ownerID, fileID)
	if err != nil {
		return err
	}
	if !file.IsDeleted || !file.IsUploaded {
		return ErrNotFound
	}
	_, err = postgresInstance.db.Exec(
		`UPDATE files SET is_deleted = false WHERE id = $1 AND owner_id = $2`,
		fileID, ownerID,
	)
	return err
}

// PurgeFile permanently deletes one owned file regardless of trash state:
// best-effort object removal, then share rows, then the file row.
func PurgeFile(ownerID, fileID string) error {
	file, err := getFileAnyState(ownerID, fileID)
	if err != nil {
		return err
	}

	var paths []string
	if file.StoragePath != "" {
		paths = append(paths, file.StoragePath)
	}
	if file.PreviewPath != "" {
		paths = append(paths, file.PreviewPath)
	}
	removeObjectsQuiet(paths)

	tx, err := postgresInstance.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM shares WHERE file_id = $1`, fileID); err != nil {
		return err
	}
	if _, err := tx.Exec(
		`DELETE FROM files WHERE id = $1 AND owner_id = $2`, fileID, ownerID,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// PurgeOwner removes every row belonging to one owner. Driven by the
// users.deleted event; object cleanup happens in the consumer by prefix.
func PurgeOwner(ownerID string) (int, error) {
	tx, err := postgresInstance.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM link_shares WHERE folder_id IN (SELECT id FROM folders WHERE owner_id = $1)`,
		ownerID,
	); err != nil {
		return 0, err
	}
	if _, err := tx.Exec(
		`DELETE FROM shares WHERE folder_id IN (SELECT id FROM folders WHERE owner_id = $1)
         OR file_id IN (SELECT id FROM files WHERE owner_id = $1)
         OR shared_with_user_id = $1`,
		ownerID,
	); err != nil {
		return 0, err
	}

	res, err := tx.Exec(`DELETE FROM files WHERE owner_id = $1`, ownerID)
	if err != nil {
		return 0, err
	}
	deleted, _ := res.RowsAffected()

	if _, err := tx.Exec(`DELETE FROM folders WHERE owner_id = $1`, ownerID); err != nil {
		return 0, err
	}
	if _, err := tx.Exec(`DELETE FROM users WHERE id = $1`, ownerID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(deleted), nil
}

// removeObjectsQuiet issues best-effort storage removals. Failures are
// logged and swallowed: a leaked blob beats a stuck trash item.
func removeObjectsQuiet(paths []string) {
	minioService := GetMinioService()
	if minioService == nil || len(paths) == 0 {
		return
	}
	for _, path := range paths {
		if err := minioService.DeleteFile(path); err != nil {
			log.Printf("[PURGE] best-effort object removal failed for %s: %v", path, err)
		}
	}
}
