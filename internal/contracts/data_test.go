package contracts

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPlan_Key(t *testing.T) {
	plan := Plan{
		PlanID:     "74449NR9870320",
		State:      "GA",
		MetalLevel: "Silver",
		Rate:       decimal.RequireFromString("298.62"),
		RateArea:   7,
	}

	want := AreaKey{State: "GA", RateArea: 7}
	if got := plan.Key(); got != want {
		t.Errorf("Key() = %v, want %v", got, want)
	}
}

func TestZipArea_Key(t *testing.T) {
	tests := []struct {
		name string
		area ZipArea
		want AreaKey
	}{
		{
			name: "single county zip",
			area: ZipArea{Zipcode: "36749", State: "AL", CountyCode: "01001", Name: "Autauga", RateArea: 11},
			want: AreaKey{State: "AL", RateArea: 11},
		},
		{
			name: "same number different state",
			area: ZipArea{Zipcode: "85310", State: "AZ", CountyCode: "04013", Name: "Maricopa", RateArea: 11},
			want: AreaKey{State: "AZ", RateArea: 11},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.area.Key(); got != tt.want {
				t.Errorf("Key() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRateResult_Resolved(t *testing.T) {
	rate := decimal.RequireFromString("245.20")

	resolved := RateResult{Zipcode: "64148", Rate: &rate}
	if !resolved.Resolved() {
		t.Error("Resolved() = false for result with a rate")
	}

	unresolved := RateResult{Zipcode: "40813"}
	if unresolved.Resolved() {
		t.Error("Resolved() = true for result without a rate")
	}
}

func TestRateResult_FormattedRate(t *testing.T) {
	tests := []struct {
		name string
		rate string
		want string
	}{
		{name: "two decimal places kept", rate: "245.20", want: "245.20"},
		{name: "whole number padded", rate: "200", want: "200.00"},
		{name: "one decimal place padded", rate: "10.5", want: "10.50"},
		{name: "extra precision rounded", rate: "231.481", want: "231.48"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := decimal.RequireFromString(tt.rate)
			result := RateResult{Zipcode: "64148", Rate: &rate}
			if got := result.FormattedRate(); got != tt.want {
				t.Errorf("FormattedRate() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("absent rate renders empty", func(t *testing.T) {
		result := RateResult{Zipcode: "40813"}
		if got := result.FormattedRate(); got != "" {
			t.Errorf("FormattedRate() = %q, want empty string", got)
		}
	})
}
