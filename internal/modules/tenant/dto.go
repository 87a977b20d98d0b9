package tenant

type CreateRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Subdomain string `json:"subdomain" binding:"required,max=63"`
}
