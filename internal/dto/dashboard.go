package dto

// AskRequest carries a natural-language question about the tenant's finances
type AskRequest struct {
	Question string `json:"question" validate:"required,min=3,max=2000"`
}

// AskResponse returns the assistant's answer grounded on the live snapshot
type AskResponse struct {
	Answer string `json:"answer"`
}
