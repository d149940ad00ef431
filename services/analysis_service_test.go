package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/models"
)

func completeProfile() models.UserProfile {
	return models.UserProfile{
		Height:        175,
		Weight:        70,
		Age:           30,
		BMI:           22.9,
		Gender:        "male",
		ActivityLevel: "sedentary",
		Allergens:     []string{"Peanuts"},
		Medications: []models.MedicationInfo{
			{Name: "Metformin", Dosage: "500mg", Frequency: "daily"},
			{Name: "Lisinopril", Dosage: "10mg", Frequency: "daily"},
		},
	}
}

func TestBuildAnalysisRequestMissingFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*models.UserProfile)
	}{
		{"height", func(p *models.UserProfile) { p.Height = 0 }},
		{"weight", func(p *models.UserProfile) { p.Weight = 0 }},
		{"age", func(p *models.UserProfile) { p.Age = 0 }},
		{"bmi", func(p *models.UserProfile) { p.BMI = 0 }},
		{"gender", func(p *models.UserProfile) { p.Gender = "" }},
		{"activityLevel", func(p *models.UserProfile) { p.ActivityLevel = "" }},
	}
	for _, c := range cases {
		profile := completeProfile()
		c.mutate(&profile)

		_, err := BuildAnalysisRequest(profile, "0001")
		var missing *MissingProfileFieldError
		if !errors.As(err, &missing) {
			t.Errorf("%s absent: got %v, want MissingProfileFieldError", c.field, err)
			continue
		}
		if missing.Field != c.field {
			t.Errorf("error names field %q, want %q", missing.Field, c.field)
		}
	}
}

func TestBuildAnalysisRequestDefaultsLists(t *testing.T) {
	profile := completeProfile()
	profile.Allergens = nil
	profile.FoodIntolerances = nil
	profile.HealthConditions = nil
	profile.DietaryPreferences = nil
	profile.Medications = nil

	req, err := BuildAnalysisRequest(profile, "0001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Absent lists serialize as [] rather than null, and the medication
	// object is present but blank.
	raw, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"allergens", "foodIntolerances", "healthConditions", "dietaryPreferences"} {
		if string(decoded[key]) != "[]" {
			t.Errorf("%s = %s, want []", key, decoded[key])
		}
	}
	if req.Medications.Name != "" {
		t.Errorf("medication = %+v, want blank", req.Medications)
	}
}

func TestBuildAnalysisRequestFirstMedicationOnly(t *testing.T) {
	req, err := BuildAnalysisRequest(completeProfile(), "0001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Medications.Name != "Metformin" {
		t.Errorf("medication = %q, want the first entry Metformin", req.Medications.Name)
	}
	if req.Barcode != "0001" {
		t.Errorf("barcode = %q", req.Barcode)
	}
}

func TestParseAnalysisResponseServerErrorBeforeParse(t *testing.T) {
	// A non-2xx status wins even when the body is garbage.
	_, err := ParseAnalysisResponse(503, []byte("<html>upstream down</html>"))
	var srvErr *ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("got %v, want ServerError", err)
	}
	if srvErr.StatusCode != 503 {
		t.Errorf("status = %d, want 503", srvErr.StatusCode)
	}
}

func TestParseAnalysisResponseInvalidFormat(t *testing.T) {
	bodies := [][]byte{
		[]byte("not json at all"),
		[]byte(`{"success": false, "details": null}`),
		[]byte(`{"details": {"brand": "x"}}`),
		[]byte(`{"success": true}`),
	}
	for _, body := range bodies {
		_, err := ParseAnalysisResponse(200, body)
		var badFmt *InvalidResponseFormatError
		if !errors.As(err, &badFmt) {
			t.Errorf("body %s: got %v, want InvalidResponseFormatError", body, err)
		}
	}
}

func TestParseAnalysisResponseRoundTrip(t *testing.T) {
	want := models.ProductDetails{
		Brand:       "Acme",
		Name:        "Granola Bar",
		Type:        "snack",
		Ingredients: "oats, honey, peanuts",
		NutritionData: models.NutritionData{
			Macronutrients: models.Macronutrients{
				Calories: 190, Protein: 4, Carbohydrates: 29, Fat: 7,
				Fiber: 3, Sugar: 11, AddedSugar: 9,
			},
			Micronutrients: models.Micronutrients{
				Sodium: 140, Potassium: 95, Calcium: 20, Iron: 1.1,
			},
			AdditionalMetrics: models.AdditionalMetrics{NovaGroup: 3},
		},
		Analysis: "Not suitable due to peanut allergy",
	}

	body, err := json.Marshal(productAnalysisResponse{Success: true, Details: &want})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := ParseAnalysisResponse(200, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *got, want)
	}
	if got.SuitabilityStatus() != models.NotSuitable {
		t.Errorf("suitability = %q, want %q", got.SuitabilityStatus(), models.NotSuitable)
	}
}

func TestFetchProductDetails(t *testing.T) {
	details := models.ProductDetails{
		Brand:    "Acme",
		Name:     "Granola Bar",
		Analysis: "Suitable for your profile",
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ProductAnalysisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Barcode != "0123456789012" {
			t.Errorf("barcode = %q", req.Barcode)
		}
		if req.Medications.Name != "Metformin" {
			t.Errorf("medication = %q, want first entry only", req.Medications.Name)
		}
		json.NewEncoder(w).Encode(productAnalysisResponse{Success: true, Details: &details})
	}))
	defer ts.Close()

	svc := &AnalysisService{apiURL: ts.URL + "/getDetailsFromBarcode", client: ts.Client()}
	got, err := svc.FetchProductDetails("0123456789012", completeProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Granola Bar" {
		t.Errorf("name = %q", got.Name)
	}
}

func TestFetchProductDetailsServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	svc := &AnalysisService{apiURL: ts.URL + "/getDetailsFromBarcode", client: ts.Client()}
	_, err := svc.FetchProductDetails("0001", completeProfile())
	var srvErr *ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("got %v, want ServerError", err)
	}
	if srvErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", srvErr.StatusCode)
	}
}
