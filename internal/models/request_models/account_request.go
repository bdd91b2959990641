package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignUpRequest struct {
	DisplayName  string `json:"display_name" binding:"required,min=2,max=80"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	ReferralCode string `json:"referral_code"`
}

type UpdateProfileRequest struct {
	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	TaxID             *string `json:"tax_id"`
	BirthDate         *int64  `json:"birth_date"`
	PhotoURL          *string `json:"photo_url"`
	Timezone          *string `json:"timezone"`
	Gender            *string `json:"gender"`
	NotificationToken *string `json:"notification_token"`
}

type RequestForgotPassword struct {
	Email string `json:"email" binding:"required,email"`
}

type ForgotPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
	Token       string `json:"token" binding:"required"`
}
