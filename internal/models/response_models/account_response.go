package response_models

type AccountLoginResponse struct {
	Token     string `json:"token"`
	IsPremium bool   `json:"is_premium"`
}

type ProfileResponse struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	TaxID             string `json:"tax_id"`
	BirthDate         *int64 `json:"birth_date,omitempty"`
	PhotoURL          string `json:"photo_url"`
	PlanType          string `json:"plan_type"`
	PlanStatus        string `json:"plan_status"`
	Timezone          string `json:"timezone"`
	Gender            string `json:"gender"`
	NotificationToken string `json:"notification_token"`
}
