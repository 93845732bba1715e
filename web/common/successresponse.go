package common

type SuccessResponse struct {
	Data interface{} `json:"data"`
}

func NewSuccessResponse(data interface{}) *SuccessResponse {
	return &SuccessResponse{
		Data: data,
	}
}

// MutationResponse carries the saved record and the list fetched right after it.
// Data is null after a delete.
type MutationResponse struct {
	Data   interface{} `json:"data"`
	Items  interface{} `json:"items"`
	Totals interface{} `json:"totals,omitempty"`
}

func NewMutationResponse(data, items interface{}) *MutationResponse {
	return &MutationResponse{
		Data:  data,
		Items: items,
	}
}

// WithTotals attaches ledger totals computed over Items.
func (r *MutationResponse) WithTotals(totals interface{}) *MutationResponse {
	r.Totals = totals
	return r
}

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
