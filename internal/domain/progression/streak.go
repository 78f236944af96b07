package progression

import (
	"fmt"
	"sort"
	"time"
)

// Streak counts consecutive study days ending at the most recent session
// date. Several sessions on the same calendar day count once. The streak
// is not anchored to today: a run that ended last week still reports its
// length.
func Streak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := truncateDay(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	streak := 1
	for i := len(days) - 1; i > 0; i-- {
		if days[i].Sub(days[i-1]) != 24*time.Hour {
			break
		}
		streak++
	}
	return streak
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Motivation picks the dashboard message for a streak length.
func Motivation(streak int) string {
	switch {
	case streak <= 0:
		return "Every master was once a beginner — start your first quest today!"
	case streak < 3:
		return "Nice start! Keep your streak alive 🔥"
	case streak < 7:
		return fmt.Sprintf("Awesome! %d-day streak — consistency is your superpower 💪", streak)
	default:
		return fmt.Sprintf("Unstoppable! %d-day streak — you’re on fire! ⚡", streak)
	}
}

// FirstQuestMotivation is shown on the dashboard before any session exists.
const FirstQuestMotivation = "Start your first study quest and earn XP today!"
