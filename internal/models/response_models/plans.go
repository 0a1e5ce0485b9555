package response_models

type PlanResponse struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Period     string  `json:"period"`
	PriceMinor int64   `json:"price_minor"`
	Currency   string  `json:"currency"`
}

type CreateCheckoutResponse struct {
	OrderCode    int64  `json:"order_code"`
	Amount       int64  `json:"amount"`
	PaymentURL   string `json:"payment_url"`
	ProviderName string `json:"provider_name"`
}
