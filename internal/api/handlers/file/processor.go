package file

import (
	"bytes"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers/util"
	"github.com/cloudlearn-droid/CloudVault/internal/models"
	"github.com/cloudlearn-droid/CloudVault/internal/services"
	"github.com/cloudlearn-droid/CloudVault/uploads/previews"
)

// clamAVURL is set at startup; empty disables virus scanning.
var clamAVURL string

func Init(clamavURL string) {
	clamAVURL = clamavURL
}

func isImageExt(ext string) bool {
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp":
		return true
	}
	return false
}

func processSingleFile(fileHeader *multipart.FileHeader, userID string, folderID *string) (models.File, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType := services.GetContentType(ext)

	// --- Reserve the metadata row (is_uploaded = false until the object lands) ---
	record, err := services.RegisterUpload(userID, fileHeader.Filename, folderID, fileHeader.Size, contentType)
	if err != nil {
		return models.File{}, err
	}

	// --- Open the uploaded file (streaming) ---
	src, err := fileHeader.Open()
	if err != nil {
		discard(record)
		return models.File{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// --- Upload directly to MinIO (NO TEMP FILES) ---
	minioService := services.GetMinioService()
	if minioService == nil {
		discard(record)
		return models.File{}, services.ErrStorageUnavailable
	}

	if err := minioService.UploadFile(src, fileHeader.Size, record.StoragePath, contentType); err != nil {
		discard(record)
		return models.File{}, fmt.Errorf("failed to upload to storage: %w", err)
	}

	if err := services.MarkFileUploaded(record.ID, userID); err != nil {
		return models.File{}, fmt.Errorf("failed to finalize upload: %w", err)
	}
	record.IsUploaded = true

	// --- Generate preview for images ---
	if isImageExt(ext) {
		if previewPath, err := generatePreview(minioService, record); err != nil {
			log.Printf("warning: preview generation failed for %s: %v", record.ID, err)
		} else {
			record.PreviewPath = previewPath
		}
	}

	// --- Kick off the virus scan in the background ---
	if clamAVURL != "" {
		go util.ScanFile(record.ID, userID, record.StoragePath, clamAVURL)
	}

	// --- Publish event to NATS JetStream ---
	uploadEvent := map[string]interface{}{
		"action":      "uploaded",
		"file_id":     record.ID,
		"object_name": record.StoragePath,
		"size":        record.Size,
		"user_id":     record.OwnerID,
		"uploaded_at": time.Now().UTC().Format(time.RFC3339),
	}
	if err := services.PublishEvent("files.uploaded", uploadEvent); err != nil {
		log.Printf("warning: failed to publish files.uploaded event: %v", err)
	}

	return record, nil
}

func generatePreview(minioService *services.MinioService, record models.File) (string, error) {
	stream, err := minioService.GetObjectStream(record.StoragePath)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	preview, err := previews.GenerateImagePreview(stream, 320)
	if err != nil {
		return "", err
	}

	previewPath := "previews/" + record.StoragePath + ".jpg"
	if err := minioService.UploadFile(bytes.NewReader(preview.Bytes()), int64(preview.Len()), previewPath, "image/jpeg"); err != nil {
		return "", err
	}

	if err := services.SetFilePreview(record.ID, record.OwnerID, previewPath); err != nil {
		return "", err
	}
	return previewPath, nil
}

func discard(record models.File) {
	if err := services.DiscardUpload(record.ID, record.OwnerID); err != nil {
		log.Printf("warning: failed to discard pending upload %s: %v", record.ID, err)
	}
}
