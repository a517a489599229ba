package models

type User struct {
	ID        string `bson:"_id,omitempty"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	Role      string `bson:"role"`
	ProfileID string `bson:"profileId"`
	TimeModel `bson:",inline"`
}
