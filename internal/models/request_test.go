package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDealsRequestParams(t *testing.T) {
	tests := []struct {
		name string
		req  DealsRequest
		want DealsParams
	}{
		{
			name: "defaults",
			req:  DealsRequest{Collection: "sale"},
			want: DealsParams{Spec: QuerySpec{Collection: "sale"}, Limit: 50, Factor: 2},
		},
		{
			name: "in range kept",
			req:  DealsRequest{Query: "shirt", Limit: 25, Factor: 4},
			want: DealsParams{Spec: QuerySpec{Search: "shirt"}, Limit: 25, Factor: 4},
		},
		{
			name: "clamped to upper bounds",
			req:  DealsRequest{Query: "shirt", Limit: 1000, Factor: 50},
			want: DealsParams{Spec: QuerySpec{Search: "shirt"}, Limit: 250, Factor: 6},
		},
		{
			name: "bounds themselves pass",
			req:  DealsRequest{Query: "shirt", Limit: 250, Factor: 6},
			want: DealsParams{Spec: QuerySpec{Search: "shirt"}, Limit: 250, Factor: 6},
		},
		{
			name: "non-positive values fall back to defaults",
			req:  DealsRequest{Query: "shirt", Limit: -3, Factor: -1},
			want: DealsParams{Spec: QuerySpec{Search: "shirt"}, Limit: 50, Factor: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Params())
		})
	}
}
