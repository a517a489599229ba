package models

type Treatment struct {
	ID        string  `json:"id" bson:"_id,omitempty"`
	Code      string  `json:"code" bson:"code"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	TimeModel `bson:",inline"`
}
