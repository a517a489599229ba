package requests

type RegisterUser struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"password"`
	RetypePassword string `json:"retype_password"`
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name" validate:"required"`
	Phone          string `json:"phone,omitempty"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}
