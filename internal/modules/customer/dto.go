package customer

type CreateRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	CPF   string `json:"cpf" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
}

type UpdateRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	CPF   string `json:"cpf" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
}
