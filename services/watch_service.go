package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"backend/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"gorm.io/gorm"
)

// WatchService pushes the flattened emergency payload to the user's
// companion devices. One-way, fire-and-forget: send failures are logged and
// never surfaced to the caller.
type WatchService struct {
	db          *gorm.DB
	sns         *awssns.Client
	platformArn string
}

func NewWatchService(db *gorm.DB) (*WatchService, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &WatchService{
		db:          db,
		sns:         awssns.NewFromConfig(cfg),
		platformArn: os.Getenv("SNS_WATCH_ARN"),
	}, nil
}

func (w *WatchService) tokenHash(tok string) string {
	h := sha256.Sum256([]byte(tok))
	return hex.EncodeToString(h[:])
}

// RegisterDevice creates (or refreshes) the SNS endpoint for a watch token.
func (w *WatchService) RegisterDevice(userID uint, token string) (*models.WatchDevice, error) {
	if w.platformArn == "" {
		return nil, errors.New("SNS_WATCH_ARN not set")
	}

	out, err := w.sns.CreatePlatformEndpoint(context.TODO(), &awssns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(w.platformArn),
		Token:                  aws.String(token),
	})
	if err != nil {
		return nil, err
	}

	dev := &models.WatchDevice{
		UserID:      userID,
		TokenHash:   w.tokenHash(token),
		EndpointARN: aws.ToString(out.EndpointArn),
		Enabled:     true,
		UpdatedAt:   time.Now(),
	}

	return w.saveDevice(dev)
}

// saveDevice upserts by token hash so a re-registered watch keeps its row.
func (w *WatchService) saveDevice(dev *models.WatchDevice) (*models.WatchDevice, error) {
	var existing models.WatchDevice
	if err := w.db.Where("user_id = ? AND token_hash = ?", dev.UserID, dev.TokenHash).First(&existing).Error; err == nil {
		existing.EndpointARN = dev.EndpointARN
		existing.UpdatedAt = time.Now()
		if err := w.db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if err := w.db.Create(dev).Error; err != nil {
		return nil, err
	}
	return dev, nil
}

// EmergencyPayload is the flattened card the watch shows offline.
type EmergencyPayload struct {
	UserName         string                  `json:"userName"`
	EmergencyContact models.EmergencyContact `json:"emergencyContact"`
	HealthConditions []string                `json:"healthConditions"`
	Allergens        []string                `json:"allergens"`
	Medications      []models.MedicationInfo `json:"medications"`
}

// SyncEmergencyInfo publishes the payload to every enabled device.
func (w *WatchService) SyncEmergencyInfo(userID uint, userName string, profile models.UserProfile) {
	var devices []models.WatchDevice
	if err := w.db.Where("user_id = ? AND enabled = ?", userID, true).Find(&devices).Error; err != nil {
		return
	}
	if len(devices) == 0 {
		return
	}

	payload := EmergencyPayload{
		UserName:         userName,
		EmergencyContact: profile.EmergencyContact,
		HealthConditions: profile.HealthConditions,
		Allergens:        profile.Allergens,
		Medications:      profile.Medications,
	}

	raw, _ := json.Marshal(payload)
	for _, d := range devices {
		_, err := w.sns.Publish(context.TODO(), &awssns.PublishInput{
			Message:   aws.String(string(raw)),
			TargetArn: aws.String(d.EndpointARN),
		})
		if err != nil {
			log.Printf("watch sync publish failed for endpoint %s: %v", d.EndpointARN, err)
		}
	}
}
