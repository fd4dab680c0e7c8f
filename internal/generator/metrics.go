package generator

import "fmt"

// TimeSavings compares the manual drafting baseline against the automated
// pass for reporting to compliance management.
type TimeSavings struct {
	ManualTime      string `json:"manual_time"`
	AutomatedTime   string `json:"automated_time"`
	TimeSaved       string `json:"time_saved"`
	PercentageSaved string `json:"percentage_saved"`
}

// CalculateTimeSavings computes drafting time saved versus a manual baseline.
func CalculateTimeSavings(manualHours float64, automatedMinutes int) TimeSavings {
	automatedHours := float64(automatedMinutes) / 60
	savedHours := manualHours - automatedHours
	percentage := 0.0
	if manualHours > 0 {
		percentage = savedHours / manualHours * 100
	}

	return TimeSavings{
		ManualTime:      fmt.Sprintf("%g hours", manualHours),
		AutomatedTime:   fmt.Sprintf("%d minutes", automatedMinutes),
		TimeSaved:       fmt.Sprintf("%.1f hours", savedHours),
		PercentageSaved: fmt.Sprintf("%.0f%%", percentage),
	}
}
