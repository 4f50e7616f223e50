package file

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers"
)

// UploadResult is the per-file result object returned to the client.
type UploadResult struct {
	Success bool        `json:"success"`
	File    interface{} `json:"file,omitempty"`  // contains models.File on success
	Error   string      `json:"error,omitempty"` // error message on failure
}

// Upload supports both single and multiple file uploads. An optional
// folder_id form field places the files inside an existing folder.
func Upload(c *gin.Context) {
	userID, ok := handlers.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		// fallback: maybe a single file
		if f, ferr := c.FormFile("file"); ferr == nil && f != nil {
			form = &multipart.Form{
				File: map[string][]*multipart.FileHeader{
					"file": {f},
				},
			}
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse multipart form: " + err.Error()})
			return
		}
	}

	var folderID *string
	if v := c.PostForm("folder_id"); v != "" {
		folderID = &v
	}

	var files []*multipart.FileHeader

	// Preferred: "files"
	if fs, found := form.File["files"]; found && len(fs) > 0 {
		files = fs
	}

	// Fallback: "file"
	if len(files) == 0 {
		if f, found := form.File["file"]; found && len(f) > 0 {
			files = f
		}
	}

	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files provided"})
		return
	}

	// Validate per-file size
	for _, fh := range files {
		if fh.Size > (200 << 20) { // 200 MB
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "file too large: " + fh.Filename,
			})
			return
		}
	}

	results := make([]UploadResult, 0, len(files))

	for _, fh := range files {
		record, err := processSingleFile(fh, userID, folderID)
		if err != nil {
			results = append(results, UploadResult{
				Success: false,
				Error:   err.Error(),
			})
		} else {
			results = append(results, UploadResult{
				Success: true,
				File:    record,
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
	})
}
