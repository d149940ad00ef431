package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"backend/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

func init() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendEmergencyCardEmail shares a plain-text emergency summary, the email
// counterpart of the in-app share sheet.
func SendEmergencyCardEmail(to, userName string, profile models.UserProfile) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Emergency health card for %s\n\n", userName)
	if profile.EmergencyContact.Name != "" {
		fmt.Fprintf(&sb, "Emergency contact: %s (%s), %s\n",
			profile.EmergencyContact.Name,
			profile.EmergencyContact.Relationship,
			profile.EmergencyContact.Phone,
		)
	}
	if len(profile.HealthConditions) > 0 {
		fmt.Fprintf(&sb, "Health conditions: %s\n", strings.Join(profile.HealthConditions, ", "))
	}
	if len(profile.Allergens) > 0 {
		fmt.Fprintf(&sb, "Allergens: %s\n", strings.Join(profile.Allergens, ", "))
	}
	for _, med := range profile.Medications {
		fmt.Fprintf(&sb, "Medication: %s %s, %s\n", med.Name, med.Dosage, med.Frequency)
	}

	return sendEmail(to, "Emergency Health Card", sb.String())
}
