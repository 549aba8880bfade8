package freedom

import "fmt"

// Day thresholds for the human label and the life-stage buckets. The
// two scales are intentionally different: the label rounds to friendly
// units, the stage marks progress milestones.
const (
	foreverDays   = 36500 // ~100 years reads as forever
	enthronedMin  = 3650
	risingMin     = 730
	breakingMin   = 180
	strugglingMin = 30
)

// FormatDays renders a day count as a human label.
func FormatDays(days int64, forever bool) string {
	switch {
	case forever || days > foreverDays:
		return "Forever"
	case days >= 730:
		return fmt.Sprintf("%d years", days/365)
	case days >= 365:
		return "1 year"
	case days >= 60:
		return fmt.Sprintf("%d months", days/30)
	case days >= 30:
		return "1 month"
	case days == 1:
		return "1 day"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// StageFor buckets a day count into a life stage.
func StageFor(days int64, forever bool) Stage {
	switch {
	case forever || days > enthronedMin:
		return StageEnthroned
	case days >= risingMin:
		return StageRising
	case days >= breakingMin:
		return StageBreaking
	case days >= strugglingMin:
		return StageStruggling
	default:
		return StageDrowning
	}
}
