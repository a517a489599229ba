package models

import "time"

type MedicalRecord struct {
	ID          string    `json:"id" bson:"id"`
	Date        string    `json:"date" bson:"date"`
	Treatment   string    `json:"treatment" bson:"treatment"`
	Description string    `json:"description" bson:"description"`
	DoctorName  string    `json:"doctorName" bson:"doctorName"`
	Notes       string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
