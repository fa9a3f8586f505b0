package dto

type SignupRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	UniversityID string `json:"university_id" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	// CustomFields is an opaque bag collected by the registration form
	// (contact info and the like); the server stores it as-is.
	CustomFields map[string]any `json:"custom_fields"`
}

type CreateEventRequest struct {
	UniversityID string   `json:"university_id" binding:"required"`
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	StartDate    string   `json:"start_date" binding:"required"` // YYYY-MM-DD
	StartTime    string   `json:"start_time" binding:"required"` // HH:MM
	EndDate      string   `json:"end_date"`
	EndTime      string   `json:"end_time"`
	Location     string   `json:"location"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
	Categories   []string `json:"categories"`
	ImageURL     string   `json:"image_url"`
}

type ExtractEventRequest struct {
	Text string `json:"text" binding:"required"`
}
