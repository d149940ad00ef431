package services

import (
	"testing"

	"backend/models"
)

func TestSaveDeviceUpsertsByTokenHash(t *testing.T) {
	db := openTestDB(t)
	if err := db.AutoMigrate(&models.WatchDevice{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	w := &WatchService{db: db}

	first, err := w.saveDevice(&models.WatchDevice{UserID: 1, TokenHash: "abc", EndpointARN: "arn:1", Enabled: true})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	second, err := w.saveDevice(&models.WatchDevice{UserID: 1, TokenHash: "abc", EndpointARN: "arn:2", Enabled: true})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("re-registration created a new row: %d -> %d", first.ID, second.ID)
	}
	if second.EndpointARN != "arn:2" {
		t.Errorf("endpoint = %q, want the refreshed arn", second.EndpointARN)
	}

	var count int64
	db.Model(&models.WatchDevice{}).Count(&count)
	if count != 1 {
		t.Errorf("%d device rows, want 1", count)
	}
}

func TestSaveDevicePropagatesStoreErrors(t *testing.T) {
	// Table deliberately not migrated; the write must fail loudly.
	w := &WatchService{db: openTestDB(t)}
	if _, err := w.saveDevice(&models.WatchDevice{UserID: 1, TokenHash: "abc"}); err == nil {
		t.Fatal("expected an error when the device store is unavailable")
	}
}
