package request_models

type CreateTicketRequest struct {
	Subject string `json:"subject" binding:"required,min=3,max=200"`
	Body    string `json:"body" binding:"required,min=1"`
}

type AddResponseRequest struct {
	Body string `json:"body" binding:"required,min=1"`
}

type CreateCheckoutRequest struct {
	PlanCode string `json:"plan_code" binding:"required"`
}
