package handlers

import (
	"encoding/json"
	"log"

	"github.com/nats-io/nats.go"
)

// HandleFileUploaded is a consumer-side audit hook for upload events.
func HandleFileUploaded(msg *nats.Msg) {
	var event struct {
		FileID string `json:"file_id"`
		UserID string `json:"user_id"`
		Size   int64  `json:"size"`
	}
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		log.Printf("[NATS] files.uploaded: invalid JSON: %v", err)
		if err := msg.Ack(); err != nil {
			log.Printf("[NATS] Failed to ack message: %v", err)
		}
		return
	}

	log.Printf("[NATS] file uploaded: id=%s user=%s size=%d", event.FileID, event.UserID, event.Size)
	if err := msg.Ack(); err != nil {
		log.Printf("[NATS] Failed to ack message: %v", err)
	}
}
