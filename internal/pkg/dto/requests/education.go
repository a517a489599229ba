package requests

type CreateEducationalContent struct {
	Title    string   `json:"title" validate:"required,max=150"`
	Summary  string   `json:"summary" validate:"required,max=300"`
	Body     string   `json:"body" validate:"required"`
	Category string   `json:"category" validate:"required"`
	Level    string   `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Status   string   `json:"status" validate:"omitempty,oneof=draft published archived"`
	Tags     []string `json:"tags,omitempty"`
}

type UpdateEducationalContent struct {
	Title    string   `json:"title" validate:"omitempty,max=150"`
	Summary  string   `json:"summary" validate:"omitempty,max=300"`
	Body     string   `json:"body"`
	Category string   `json:"category"`
	Level    string   `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Status   string   `json:"status" validate:"omitempty,oneof=draft published archived"`
	Tags     []string `json:"tags,omitempty"`
}
