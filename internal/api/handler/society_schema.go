package handler

type createSocietyRequest struct {
	Name        string  `json:"name"         validate:"required"`
	LogoURL     *string `json:"logo_url"     validate:"omitempty,url"`
	ChairName   string  `json:"chair_name"   validate:"required"`
	Description string  `json:"description"`
	FacultyName *string `json:"faculty_name"`
}

// updateSocietyRequest is a patch: nil fields are left unchanged.
type updateSocietyRequest struct {
	Name        *string `json:"name"         validate:"omitempty,min=1"`
	LogoURL     *string `json:"logo_url"     validate:"omitempty,url"`
	ChairName   *string `json:"chair_name"`
	Description *string `json:"description"`
	FacultyName *string `json:"faculty_name"`
}
