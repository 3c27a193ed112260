package request

// Flow event payloads. Each maps to one guarded transition of the booking
// flow; the flow itself decides whether the event is legal for its step.

type FlowSelectRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

type FlowConfigureRequest struct {
	Material  string `json:"material"`
	Size      string `json:"size"`
	Stories   string `json:"stories"`
	RoofPitch string `json:"roof_pitch"`
}

type FlowRemoveRequest struct {
	Index *int `json:"index" binding:"required"`
}

type FlowPaymentResultRequest struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
