package models

type AnalyzeBusinessRequest struct {
	URL string `json:"url"`
}

type PaymentIntentRequest struct {
	Amount float64 `json:"amount"`
}

type AccessRequestInput struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ApproveAccessRequest struct {
	RequestID string `json:"requestId"`
}

type CheckPasswordRequest struct {
	Password string `json:"password"`
}
