package pet

import "time"

type CreateRequest struct {
	CustomerID int64      `json:"customer_id" binding:"required"`
	Name       string     `json:"name" binding:"required,max=200"`
	Species    string     `json:"species" binding:"required"`
	Breed      string     `json:"breed" binding:"omitempty,max=100"`
	BirthDate  *time.Time `json:"birth_date"`
}

type UpdateRequest struct {
	Name      string     `json:"name" binding:"required,max=200"`
	Species   string     `json:"species" binding:"required"`
	Breed     string     `json:"breed" binding:"omitempty,max=100"`
	BirthDate *time.Time `json:"birth_date"`
}
