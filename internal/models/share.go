package models

import (
	"time"
)

// Share roles are advisory tags recorded on a grant; no capability matrix
// is evaluated against them yet.
const (
	RoleOwner  = "owner"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// ValidShareRole reports whether role is one of the accepted tags.
func ValidShareRole(role string) bool {
	switch role {
	case RoleOwner, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// Share grants a user access to a folder or a file (exactly one of
// FolderID/FileID is set).
type Share struct {
	ID               string    `json:"id"`
	FolderID         *string   `json:"folder_id"`
	FileID           *string   `json:"file_id"`
	SharedWithUserID string    `json:"shared_with_user_id"`
	Role             string    `json:"role"`
	CreatedAt        time.Time `json:"created_at"`
}

// LinkShare is a bearer-token capability for anonymous read access to one
// folder. Possession of the token is the only check; expiry is enforced at
// resolution time.
type LinkShare struct {
	ID        string    `json:"id"`
	FolderID  string    `json:"folder_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
