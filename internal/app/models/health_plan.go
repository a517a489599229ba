package models

import "time"

type DailyRoutine struct {
	Morning []string `json:"morning" bson:"morning"`
	Evening []string `json:"evening" bson:"evening"`
}

type DailyProgress struct {
	Morning bool `json:"morning" bson:"morning"`
	Evening bool `json:"evening" bson:"evening"`
}

// HealthPlan keys Progress by calendar date (YYYY-MM-DD); days without a
// toggle simply have no entry.
type HealthPlan struct {
	Routine         DailyRoutine             `json:"routine" bson:"routine"`
	Recommendations string                   `json:"recommendations" bson:"recommendations"`
	Progress        map[string]DailyProgress `json:"progress" bson:"progress"`
	LastUpdated     time.Time                `json:"lastUpdated" bson:"lastUpdated"`
}
