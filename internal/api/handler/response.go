package handler

// apiResponse is the JSON envelope shared by every endpoint.
type apiResponse struct {
	Success    bool                `json:"success"`
	Data       any                 `json:"data,omitempty"`
	Message    string              `json:"message,omitempty"`
	Error      string              `json:"error,omitempty"`
	Errors     []FieldError        `json:"errors,omitempty"`
	Pagination *paginationResponse `json:"pagination,omitempty"`
}

// paginationResponse accompanies list responses.
type paginationResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}
