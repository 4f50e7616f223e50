package nats

import (
	"strings"

	"github.com/nats-io/nats.go"

	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers"
	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers/user"
	"github.com/cloudlearn-droid/CloudVault/internal/services"
)

// Routes maps JetStream subjects to their durable consumers.
func Routes() map[string]nats.MsgHandler {
	return map[string]nats.MsgHandler{

		// User events
		"users.deleted": user.HandleUserDeleted,

		// File events
		"files.uploaded": handlers.HandleFileUploaded,
	}
}

// SubscribeAll loads all routes once during startup.
func SubscribeAll(routes map[string]nats.MsgHandler) error {
	for subject, handler := range routes {
		// durable consumer names cannot contain dots
		durable := "cloudvault-" + strings.ReplaceAll(subject, ".", "-")
		if _, err := services.SubscribeEvent(subject, durable, handler); err != nil {
			return err
		}
	}
	return nil
}
