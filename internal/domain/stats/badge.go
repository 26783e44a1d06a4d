package stats

// Tier is a badge's achievement rank. Tiers are totally ordered.
type Tier int

const (
	TierLocked Tier = iota
	TierBronze
	TierSilver
	TierGold
	TierDiamond
)

var tierNames = map[Tier]string{
	TierLocked:  "locked",
	TierBronze:  "bronze",
	TierSilver:  "silver",
	TierGold:    "gold",
	TierDiamond: "diamond",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "locked"
}

const (
	MetricGoals   = "goals"
	MetricAssists = "assists"
	MetricMatches = "matches"
)

// Track is one progression ladder: four ascending thresholds mapped to
// bronze, silver, gold and diamond.
type Track struct {
	Metric     string
	Thresholds [4]int
}

// Badge is the computed progression state of one track.
type Badge struct {
	Metric        string
	Tier          Tier
	Value         int
	NextThreshold *int // nil at diamond
	ProgressPct   int  // toward the next tier, in [0,100]
}

func DefaultTracks() []Track {
	return []Track{
		{Metric: MetricGoals, Thresholds: [4]int{5, 15, 40, 100}},
		{Metric: MetricAssists, Thresholds: [4]int{5, 15, 40, 100}},
		{Metric: MetricMatches, Thresholds: [4]int{10, 30, 75, 150}},
	}
}

// Progress computes the badge state for one track. The tier is the highest
// whose threshold the value meets; progress is measured between the current
// tier's threshold (0 when locked) and the next one.
func Progress(value int, track Track) Badge {
	out := Badge{Metric: track.Metric, Tier: TierLocked, Value: value}

	for i, threshold := range track.Thresholds {
		if value >= threshold {
			out.Tier = Tier(i + 1)
		}
	}

	if out.Tier == TierDiamond {
		out.ProgressPct = 100
		return out
	}

	current := 0
	if out.Tier > TierLocked {
		current = track.Thresholds[out.Tier-1]
	}
	next := track.Thresholds[out.Tier]
	out.NextThreshold = &next

	span := next - current
	if span <= 0 {
		return out
	}
	pct := 100 * (value - current) / span
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	out.ProgressPct = pct

	return out
}

// Badges evaluates every track against the summary's aggregate values.
func Badges(summary Summary, tracks []Track) []Badge {
	out := make([]Badge, 0, len(tracks))
	for _, track := range tracks {
		out = append(out, Progress(metricValue(summary, track.Metric), track))
	}
	return out
}

func metricValue(summary Summary, metric string) int {
	switch metric {
	case MetricGoals:
		return summary.TotalGoals
	case MetricAssists:
		return summary.TotalAssists
	case MetricMatches:
		return summary.MatchesPlayed
	default:
		return 0
	}
}

// OverallLevel folds all badge tiers into a single level number.
func OverallLevel(badges []Badge) int {
	level := 0
	for _, badge := range badges {
		level += int(badge.Tier)
	}
	return level
}

// MaxLevel bounds the level progress bar: every track at diamond.
func MaxLevel(tracks []Track) int {
	return len(tracks) * int(TierDiamond)
}
