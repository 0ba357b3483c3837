package projection

// DefaultMilestoneThresholds are the renewable-share marks the dashboard
// reports first-crossing years for.
var DefaultMilestoneThresholds = []float64{50, 65, 80, 90, 95}

// Milestone records the first projected year the renewable share reaches a
// threshold.
type Milestone struct {
	ThresholdPct float64 `json:"threshold_pct"`
	Year         int     `json:"year"`
}

// Milestones scans an ordered projection for the first year at or above each
// threshold. Thresholds never reached are omitted.
func Milestones(records []ProjectionRecord, thresholds []float64) []Milestone {
	if thresholds == nil {
		thresholds = DefaultMilestoneThresholds
	}
	out := make([]Milestone, 0, len(thresholds))
	for _, th := range thresholds {
		for _, r := range records {
			if r.RenewableSharePct >= th {
				out = append(out, Milestone{ThresholdPct: th, Year: r.Year})
				break
			}
		}
	}
	return out
}
