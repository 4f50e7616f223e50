package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioService is the gateway to the object storage backend. One long-lived
// client is shared process-wide; the interface is stateless per call.
type MinioService struct {
	Client     *minio.Client
	BucketName string
}

var minioInstance *MinioService

func InitializeMinio(endpoint, accessKey, secretKey, bucket string, useSSL bool) error {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create MinIO client: %v", err)
	}

	// Create bucket if it doesn't exist
	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %v", err)
	}

	if !exists {
		err = client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %v", err)
		}
		log.Printf("Created bucket: %s", bucket)
	}

	minioInstance = &MinioService{
		Client:     client,
		BucketName: bucket,
	}

	log.Println("Connected to MinIO successfully")
	return nil
}

func GetMinioService() *MinioService {
	return minioInstance
}

// CheckConnection is used by health checks.
func (m *MinioService) CheckConnection() error {
	if m == nil || m.Client == nil {
		return fmt.Errorf("minio service not initialized")
	}
	_, err := m.Client.BucketExists(context.Background(), m.BucketName)
	return err
}

// UploadFile streams object content into the bucket.
func (m *MinioService) UploadFile(reader io.Reader, size int64, objectName, contentType string) error {
	_, err := m.Client.PutObject(
		context.Background(),
		m.BucketName,
		objectName,
		reader,
		size,
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	return err
}

// GetObjectStream opens the object for reading. The caller closes it.
func (m *MinioService) GetObjectStream(objectName string) (io.ReadCloser, error) {
	obj, err := m.Client.GetObject(context.Background(), m.BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// DeleteFile removes one object. Removing an absent object is not an error.
func (m *MinioService) DeleteFile(objectName string) error {
	return m.Client.RemoveObject(context.Background(), m.BucketName, objectName, minio.RemoveObjectOptions{})
}

// PresignedDownloadURL returns a short-lived signed GET URL for the object,
// so downloads don't double-transit bytes through this service.
func (m *MinioService) PresignedDownloadURL(objectName, downloadName string, ttl time.Duration) (string, error) {
	reqParams := make(url.Values)
	if downloadName != "" {
		reqParams.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	}

	signedURL, err := m.Client.PresignedGetObject(context.Background(), m.BucketName, objectName, ttl, reqParams)
	if err != nil {
		return "", err
	}
	return signedURL.String(), nil
}

// DeleteObjectsByPrefix removes every object under prefix. Used by the
// users.deleted cleanup path.
func (m *MinioService) DeleteObjectsByPrefix(prefix string) error {
	ctx := context.Background()

	objectsCh := m.Client.ListObjects(ctx, m.BucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	errorCh := m.Client.RemoveObjects(ctx, m.BucketName, objectsCh, minio.RemoveObjectsOptions{})
	for removeErr := range errorCh {
		if removeErr.Err != nil {
			log.Printf("[MinIO] Failed to delete object %s: %v", removeErr.ObjectName, removeErr.Err)
			return removeErr.Err
		}
	}
	return nil
}

// GetContentType Helper function to determine the content type
func GetContentType(extension string) string {
	switch extension {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".pdf":
		return "application/pdf"
	case ".mp4":
		return "video/mp4"
	case ".mp3":
		return "audio/mpeg"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
