package response_models

type AccountLoginResponse struct {
	Token     string `json:"token"`
	IsPremium bool   `json:"is_premium"`
}

type AccountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsPremium bool   `json:"is_premium"`
	IsTrial   bool   `json:"is_trial"`
}
