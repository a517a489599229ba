package requests

type UpsertHealthPlanRoutine struct {
	Morning []string `json:"morning" validate:"required,min=1"`
	Evening []string `json:"evening" validate:"required,min=1"`
}

type UpsertHealthPlan struct {
	Routine         UpsertHealthPlanRoutine `json:"routine" validate:"required"`
	Recommendations string                  `json:"recommendations" validate:"max=1000"`
}

type ToggleProgress struct {
	Date   string `json:"date" validate:"required,clinic_date"`
	Period string `json:"period" validate:"required,oneof=morning evening"`
	Done   bool   `json:"done"`
}
