package catalog

type UpsertRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Description     string `json:"description"`
	Price           string `json:"price" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
	IsActive        *bool  `json:"is_active"`
}
