package common

type Pagination struct {
	Total int64 `json:"total"`
}

type SearchResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
	Totals     interface{} `json:"totals,omitempty"`
}

func NewSearchResponse(data interface{}, total int64) *SearchResponse {
	return &SearchResponse{
		Data: data,
		Pagination: Pagination{
			Total: total,
		},
	}
}

// WithTotals attaches ledger totals computed over Data.
func (r *SearchResponse) WithTotals(totals interface{}) *SearchResponse {
	r.Totals = totals
	return r
}
