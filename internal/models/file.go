package models

import (
	"time"
)

// File is the metadata row for one stored object. A file with
// IsUploaded=false is a registered placeholder whose bytes never reached
// storage; those rows stay invisible to listing, search and download.
type File struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	OwnerID     string    `json:"owner_id"`
	FolderID    *string   `json:"folder_id"`
	StoragePath string    `json:"storage_path,omitempty"`
	Size        int64     `json:"size"`
	MimeType    string    `json:"mime_type"`
	IsUploaded  bool      `json:"is_uploaded"`
	IsDeleted   bool      `json:"is_deleted"`
	ScanStatus  string    `json:"scan_status"`
	PreviewPath string    `json:"preview_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserFileStats summarizes an owner's uploaded files.
type UserFileStats struct {
	FileCount int64 `json:"file_count"`
	TotalSize int64 `json:"total_size"`
}
