package response

import "pa_dog_license/internal/domain/entities"

type LicenseFeeResponse struct {
	Period string  `json:"period" example:"1-year"`
	Label  string  `json:"label" example:"1 Year"`
	Fee    float64 `json:"fee" example:"25"`
	Total  float64 `json:"total" example:"25"`
}

func FromFeeQuote(q entities.FeeQuote) LicenseFeeResponse {
	return LicenseFeeResponse{
		Period: string(q.Period),
		Label:  q.Label,
		Fee:    q.Fee,
		Total:  q.Total,
	}
}

func FromFeeQuotes(qs []entities.FeeQuote) []LicenseFeeResponse {
	out := make([]LicenseFeeResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromFeeQuote(q))
	}
	return out
}
