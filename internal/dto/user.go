package dto

// UserResponse sanitized account info.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ProfileResponse volunteer profile.
type ProfileResponse struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Skills       string `json:"skills"`
	Interests    string `json:"interests"`
	Availability string `json:"availability"`
	Phone        string `json:"phone"`
}

// UpdateProfileRequest profile edit.
type UpdateProfileRequest struct {
	Name         string `json:"name"         binding:"omitempty,min=2,max=100"`
	Skills       string `json:"skills"       binding:"max=2000"`
	Interests    string `json:"interests"    binding:"max=2000"`
	Availability string `json:"availability" binding:"max=2000"`
	Phone        string `json:"phone"        binding:"max=30"`
}

// VolunteerListRequest admin volunteer listing.
type VolunteerListRequest struct {
	PaginationRequest
	Keyword string `form:"keyword" binding:"omitempty,max=100"`
}

// VolunteerResponse admin view of a volunteer.
type VolunteerResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Skills       string  `json:"skills,omitempty"`
	Interests    string  `json:"interests,omitempty"`
	Availability string  `json:"availability,omitempty"`
	Phone        string  `json:"phone,omitempty"`
	JoinedAt     string  `json:"joined_at"`
	TotalHours   float64 `json:"total_hours"`
}
