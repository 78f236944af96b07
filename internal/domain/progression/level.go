package progression

const (
	XPPerLevel = 100

	minStudyXP = 5
	maxStudyXP = 120
)

// LevelFor returns the level reached with totalXP and the XP still missing
// to reach the next one. Level 1 starts at 0 XP.
func LevelFor(totalXP int) (level, xpToNext int) {
	if totalXP < 0 {
		totalXP = 0
	}
	level = totalXP/XPPerLevel + 1
	xpToNext = level*XPPerLevel - totalXP
	return level, xpToNext
}

// StudyXP converts a logged study session into XP: one point per minute,
// with a floor so short sessions still count and a cap against inflated logs.
func StudyXP(durationMinutes int) int {
	if durationMinutes <= 0 {
		return 0
	}
	switch {
	case durationMinutes < minStudyXP:
		return minStudyXP
	case durationMinutes > maxStudyXP:
		return maxStudyXP
	default:
		return durationMinutes
	}
}
