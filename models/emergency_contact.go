package models

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	IsAuthorized bool   `json:"isAuthorized"`
}
