package response

import (
	"github.com/brightwash/booking-service/internal/booking/flow"
	"github.com/brightwash/booking-service/internal/domain/pricing"
)

// FlowStateResponse is a render-ready flow snapshot plus the server-side
// session id clients echo back on every event.
type FlowStateResponse struct {
	FlowID            string                 `json:"flow_id"`
	Step              string                 `json:"step"`
	SelectedServiceID string                 `json:"selected_service_id,omitempty"`
	Quotes            []ServiceQuoteResponse `json:"quotes"`
	Total             float64                `json:"total"`
	FormattedTotal    string                 `json:"formatted_total"`
	Fundable          bool                   `json:"fundable"`
	IsGuest           bool                   `json:"is_guest"`
	Authenticated     bool                   `json:"authenticated"`
	BookingID         string                 `json:"booking_id,omitempty"`
	Error             string                 `json:"error,omitempty"`
}

func FromFlowState(flowID string, st flow.State) FlowStateResponse {
	return FlowStateResponse{
		FlowID:            flowID,
		Step:              string(st.Step),
		SelectedServiceID: st.SelectedServiceID,
		Quotes:            FromServiceQuotes(st.Quotes),
		Total:             st.Total,
		FormattedTotal:    pricing.FormatPrice(st.Total),
		Fundable:          st.Fundable,
		IsGuest:           st.IsGuest,
		Authenticated:     st.Authenticated,
		BookingID:         st.BookingID,
		Error:             st.Error,
	}
}
