package util

import (
	"log"
	"time"

	clamd "github.com/dutchcoders/go-clamd"

	"github.com/cloudlearn-droid/CloudVault/internal/services"
)

// ScanFile streams an object through ClamAV. Infected objects are
// removed from storage immediately, the record keeps the verdict.
func ScanFile(fileID, ownerID, objectName, clamAvUrl string) {
	minioService := services.GetMinioService()
	if minioService == nil {
		log.Println("Scan skipped, storage not available")
		return
	}

	stream, err := minioService.GetObjectStream(objectName)
	if err != nil {
		log.Println("Failed to open object for scanning:", err)
		return
	}
	defer stream.Close()

	c := clamd.NewClamd(clamAvUrl)
	response, err := c.ScanStream(stream, make(chan bool))
	if err != nil {
		log.Println("Scan failed:", err)
		return
	}

	status := "clean"
	for res := range response {
		if res.Status == clamd.RES_FOUND {
			log.Printf("Virus detected in %s: %s", fileID, res.Description)
			status = "infected"

			// delete infected file
			if err := minioService.DeleteFile(objectName); err != nil {
				log.Println("Failed to delete infected file:", err)
				return
			}
		}
	}

	if err := services.UpdateFileScanStatus(fileID, ownerID, status, time.Now()); err != nil {
		log.Println("Failed to update scan status:", err)
	} else {
		log.Printf("Scan finished for %s: %s", fileID, status)
	}
}
