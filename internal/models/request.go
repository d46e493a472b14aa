package models

const (
	DefaultLimit  = 50
	MaxLimit      = 250
	DefaultFactor = 2
	MaxFactor     = 6
)

// DealsRequest carries the raw query parameters of GET /deals. Exactly one of
// collection and query must be supplied.
type DealsRequest struct {
	Collection string `query:"collection" validate:"required_without=Query,excluded_with=Query"`
	Query      string `query:"query"`
	Limit      int    `query:"limit"`
	Factor     int    `query:"factor"`
}

// DealsParams is the validated, clamped form of a DealsRequest.
type DealsParams struct {
	Spec   QuerySpec
	Limit  int
	Factor int
}

// Params applies the defaulting and clamping contract: limit in [1,250]
// (default 50), factor in [1,6] (default 2). A missing or zero value takes
// the default.
func (r DealsRequest) Params() DealsParams {
	return DealsParams{
		Spec:   QuerySpec{Collection: r.Collection, Search: r.Query},
		Limit:  clamp(r.Limit, DefaultLimit, MaxLimit),
		Factor: clamp(r.Factor, DefaultFactor, MaxFactor),
	}
}

func clamp(v, def, max int) int {
	switch {
	case v <= 0:
		return def
	case v > max:
		return max
	default:
		return v
	}
}

// DealsResponse is the success envelope of GET /deals.
type DealsResponse struct {
	Meta     DealsMeta `json:"meta"`
	Products []Product `json:"products"`
}

type DealsMeta struct {
	Collection string `json:"collection"`
	Query      string `json:"query"`
	Limit      int    `json:"limit"`
	Factor     int    `json:"factor"`
}

// ErrorResponse is the failure envelope for every non-2xx status.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}
