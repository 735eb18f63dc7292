package calculator

import (
	"github.com/iwvelando/paint-bid/internal/pricing"
	"github.com/iwvelando/paint-bid/pkg/mathutil"
)

// DurationEstimate is how many whole days a crew needs to earn the labor.
type DurationEstimate struct {
	CrewSize    int     `json:"crewSize"`
	DailyRate   float64 `json:"dailyRate"`
	Description string  `json:"description,omitempty"`
	Days        int     `json:"days"`
}

// EstimateJobDuration returns one estimate per configured crew, in crew
// order. A crew with a non-positive daily rate is estimated at 0 days.
func EstimateJobDuration(labor float64, crews []pricing.CrewRate) []DurationEstimate {
	estimates := make([]DurationEstimate, 0, len(crews))
	for _, crew := range crews {
		estimates = append(estimates, estimateFor(labor, crew))
	}
	return estimates
}

// EstimateForCrew returns the estimate for a single crew size.
func EstimateForCrew(labor float64, crews []pricing.CrewRate, crewSize int) (DurationEstimate, bool) {
	for _, crew := range crews {
		if crew.CrewSize == crewSize {
			return estimateFor(labor, crew), true
		}
	}
	return DurationEstimate{}, false
}

func estimateFor(labor float64, crew pricing.CrewRate) DurationEstimate {
	return DurationEstimate{
		CrewSize:    crew.CrewSize,
		DailyRate:   crew.DailyRate,
		Description: crew.Description,
		Days:        mathutil.CeilDiv(labor, crew.DailyRate),
	}
}
