package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"backend/models"
)

// AssistantService wraps the remote nutrition Q&A endpoint.
type AssistantService struct {
	apiURL string
	client *http.Client
}

func NewAssistantService() *AssistantService {
	return &AssistantService{
		apiURL: os.Getenv("ANALYSIS_API_URL") + "/getRestaurantSuggestion",
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// ChatRequest carries the question plus the dietary context. Unlike the
// analysis payload nothing here is required: chat works with whatever slice
// of the profile exists, so every field is defaulted rather than validated.
type ChatRequest struct {
	Question                string                `json:"question"`
	Allergens               []string              `json:"allergens"`
	OtherAllergens          string                `json:"otherAllergens"`
	FoodIntolerances        []string              `json:"foodIntolerances"`
	HealthConditions        []string              `json:"healthConditions"`
	DietaryPreferences      []string              `json:"dietaryPreferences"`
	OtherDietaryPreferences string                `json:"otherDietaryPreferences"`
	Medications             models.MedicationInfo `json:"medications"`
}

// BuildChatRequest never fails; an incomplete profile just produces a
// sparser payload.
func BuildChatRequest(profile models.UserProfile, question string) ChatRequest {
	medication := models.MedicationInfo{}
	if len(profile.Medications) > 0 {
		medication = profile.Medications[0]
	}

	return ChatRequest{
		Question:                question,
		Allergens:               emptyIfNil(profile.Allergens),
		OtherAllergens:          profile.OtherAllergens,
		FoodIntolerances:        emptyIfNil(profile.FoodIntolerances),
		HealthConditions:        emptyIfNil(profile.HealthConditions),
		DietaryPreferences:      emptyIfNil(profile.DietaryPreferences),
		OtherDietaryPreferences: profile.OtherDietaryPreferences,
		Medications:             medication,
	}
}

// ParseChatResponse extracts the assistant's reply. Deployments of the
// remote service answer under either "response" or "reply"; both are
// accepted, in that order.
func ParseChatResponse(statusCode int, body []byte) (string, error) {
	if statusCode < 200 || statusCode > 299 {
		return "", &ServerError{StatusCode: statusCode}
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", &InvalidResponseFormatError{Reason: err.Error()}
	}

	for _, key := range []string{"response", "reply"} {
		raw, ok := decoded[key]
		if !ok {
			continue
		}
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return "", &InvalidResponseFormatError{Reason: fmt.Sprintf("%q is not a string", key)}
		}
		return text, nil
	}

	return "", &InvalidResponseFormatError{Reason: "neither response nor reply present"}
}

// Ask performs the chat round trip for one question.
func (s *AssistantService) Ask(profile models.UserProfile, question string) (string, error) {
	payload, err := json.Marshal(BuildChatRequest(profile, question))
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call chat API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chat response: %w", err)
	}

	return ParseChatResponse(resp.StatusCode, body)
}
