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

// AnalysisService wraps the remote barcode-analysis endpoint. The service's
// internals are opaque; only the request/response contract lives here.
type AnalysisService struct {
	apiURL string
	client *http.Client
}

func NewAnalysisService() *AnalysisService {
	return &AnalysisService{
		apiURL: os.Getenv("ANALYSIS_API_URL") + "/getDetailsFromBarcode",
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// ProductAnalysisRequest is the payload the analysis endpoint expects.
// Only the first medication goes over the wire; the endpoint takes one.
type ProductAnalysisRequest struct {
	Barcode                 string                `json:"barcode"`
	Height                  float64               `json:"height"`
	Weight                  float64               `json:"weight"`
	Age                     int                   `json:"age"`
	BMI                     float64               `json:"bmi"`
	Gender                  string                `json:"gender"`
	ActivityLevel           string                `json:"activityLevel"`
	Allergens               []string              `json:"allergens"`
	OtherAllergens          string                `json:"otherAllergens"`
	FoodIntolerances        []string              `json:"foodIntolerances"`
	HealthConditions        []string              `json:"healthConditions"`
	DietaryPreferences      []string              `json:"dietaryPreferences"`
	OtherDietaryPreferences string                `json:"otherDietaryPreferences"`
	Medications             models.MedicationInfo `json:"medications"`
}

type productAnalysisResponse struct {
	Success bool                   `json:"success"`
	Details *models.ProductDetails `json:"details"`
}

// BuildAnalysisRequest assembles the analysis payload from a profile
// snapshot. The required scalars must all be present (zero values count as
// missing); list fields default to empty instead of failing.
func BuildAnalysisRequest(profile models.UserProfile, barcode string) (*ProductAnalysisRequest, error) {
	switch {
	case profile.Height <= 0:
		return nil, &MissingProfileFieldError{Field: "height"}
	case profile.Weight <= 0:
		return nil, &MissingProfileFieldError{Field: "weight"}
	case profile.Age <= 0:
		return nil, &MissingProfileFieldError{Field: "age"}
	case profile.BMI <= 0:
		return nil, &MissingProfileFieldError{Field: "bmi"}
	case profile.Gender == "":
		return nil, &MissingProfileFieldError{Field: "gender"}
	case profile.ActivityLevel == "":
		return nil, &MissingProfileFieldError{Field: "activityLevel"}
	}

	medication := models.MedicationInfo{}
	if len(profile.Medications) > 0 {
		medication = profile.Medications[0]
	}

	return &ProductAnalysisRequest{
		Barcode:                 barcode,
		Height:                  profile.Height,
		Weight:                  profile.Weight,
		Age:                     profile.Age,
		BMI:                     profile.BMI,
		Gender:                  profile.Gender,
		ActivityLevel:           profile.ActivityLevel,
		Allergens:               emptyIfNil(profile.Allergens),
		OtherAllergens:          profile.OtherAllergens,
		FoodIntolerances:        emptyIfNil(profile.FoodIntolerances),
		HealthConditions:        emptyIfNil(profile.HealthConditions),
		DietaryPreferences:      emptyIfNil(profile.DietaryPreferences),
		OtherDietaryPreferences: profile.OtherDietaryPreferences,
		Medications:             medication,
	}, nil
}

// ParseAnalysisResponse normalizes a raw reply into a ProductDetails record.
// The transport status is checked before any decoding.
func ParseAnalysisResponse(statusCode int, body []byte) (*models.ProductDetails, error) {
	if statusCode < 200 || statusCode > 299 {
		return nil, &ServerError{StatusCode: statusCode}
	}

	var decoded productAnalysisResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &InvalidResponseFormatError{Reason: err.Error()}
	}
	if !decoded.Success || decoded.Details == nil {
		return nil, &InvalidResponseFormatError{Reason: "missing success/details"}
	}
	return decoded.Details, nil
}

// FetchProductDetails performs the analysis round trip for one barcode.
// Single shot: no retry, no dedup; overlapping scans each fire their own
// request and the caller discards results it no longer wants.
func (s *AnalysisService) FetchProductDetails(barcode string, profile models.UserProfile) (*models.ProductDetails, error) {
	reqBody, err := BuildAnalysisRequest(profile, barcode)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call analysis API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis response: %w", err)
	}

	return ParseAnalysisResponse(resp.StatusCode, body)
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
