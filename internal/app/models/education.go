package models

type EducationalContent struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	Title       string   `json:"title" bson:"title"`
	Summary     string   `json:"summary" bson:"summary"`
	Body        string   `json:"body" bson:"body"`
	Category    string   `json:"category" bson:"category"`
	Level       string   `json:"level" bson:"level"`
	Status      string   `json:"status" bson:"status"`
	Tags        []string `json:"tags,omitempty" bson:"tags,omitempty"`
	MaterialKey string   `json:"materialKey,omitempty" bson:"materialKey,omitempty"`
	AuthorID    string   `json:"authorId" bson:"authorId"`
	TimeModel   `bson:",inline"`
}
