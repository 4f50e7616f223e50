package user

import (
	"encoding/json"
	"log"

	"github.com/nats-io/nats.go"

	"github.com/cloudlearn-droid/CloudVault/internal/services"
)

type UserDeletedPayload struct {
	UserID string `json:"user_id"`
}

// HandleUserDeleted wipes every trace of an account: the stored objects
// by owner prefix, then the rows in a single transaction.
func HandleUserDeleted(msg *nats.Msg) {
	var payload UserDeletedPayload
	if err := json.Unmarshal(msg.Data, &payload); err != nil {
		log.Printf("[NATS] users.deleted: invalid JSON: %v", err)
		nak(msg)
		return
	}

	userID := payload.UserID
	if userID == "" {
		log.Printf("[NATS] users.deleted: missing user_id")
		nak(msg)
		return
	}

	log.Printf("[NATS] Processing users.deleted for user_id: %s", userID)

	// 1. Delete the objects. Locators are prefixed by owner id, so one
	// prefix sweep covers uploads and previews alike.
	minioSvc := services.GetMinioService()
	if minioSvc == nil {
		log.Printf("[NATS] MinIO service not available — skipping object deletion")
	} else {
		prefix := userID + "/"
		if err := minioSvc.DeleteObjectsByPrefix(prefix); err != nil {
			log.Printf("[NATS] Failed to delete objects for user %s: %v", userID, err)
			nak(msg)
			return
		}
		if err := minioSvc.DeleteObjectsByPrefix("previews/" + prefix); err != nil {
			log.Printf("[NATS] Failed to delete previews for user %s: %v", userID, err)
		}
	}

	// 2. Delete the rows
	deletedCount, err := services.PurgeOwner(userID)
	if err != nil {
		log.Printf("[NATS] Failed to purge records for user %s: %v", userID, err)
		nak(msg)
		return
	}
	log.Printf("[NATS] Deleted %d file records from DB", deletedCount)

	log.Printf("[NATS] Successfully cleaned up user %s", userID)
	ack(msg)
}

// ack safely acknowledges the message
func ack(msg *nats.Msg) {
	if err := msg.Ack(); err != nil {
		log.Printf("[NATS] Failed to ack message: %v", err)
	}
}

// nak negatively acknowledges (retry)
func nak(msg *nats.Msg) {
	if err := msg.Nak(); err != nil {
		log.Printf("[NATS] Failed to nak message: %v", err)
	}
}
