package auth_dto

// LoginRequest credentials posted to the backend
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse bearer token issued by the backend
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// ErrorBody error payload of the backend
type ErrorBody struct {
	Message string `json:"message"`
}
