package progression_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/studyquest/backend/internal/domain/progression"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t.Add(10 * time.Hour)
}

func TestStreak_Empty(t *testing.T) {
	assert.Equal(t, 0, progression.Streak(nil))
}

func TestStreak_ConsecutiveDays(t *testing.T) {
	dates := []time.Time{day("2024-03-03"), day("2024-03-01"), day("2024-03-02")}
	assert.Equal(t, 3, progression.Streak(dates))
}

func TestStreak_DuplicatesCountOnce(t *testing.T) {
	dates := []time.Time{
		day("2024-03-02"),
		day("2024-03-02").Add(5 * time.Hour),
		day("2024-03-01"),
	}
	assert.Equal(t, 2, progression.Streak(dates))
}

func TestStreak_GapStopsCount(t *testing.T) {
	dates := []time.Time{day("2024-03-01"), day("2024-03-02"), day("2024-03-05"), day("2024-03-06")}
	assert.Equal(t, 2, progression.Streak(dates))
}

func TestStreak_SingleDay(t *testing.T) {
	assert.Equal(t, 1, progression.Streak([]time.Time{day("2024-01-10")}))
}

func TestMotivation(t *testing.T) {
	tests := []struct {
		streak int
		want   string
	}{
		{0, "Every master was once a beginner — start your first quest today!"},
		{1, "Nice start! Keep your streak alive 🔥"},
		{2, "Nice start! Keep your streak alive 🔥"},
		{3, "Awesome! 3-day streak — consistency is your superpower 💪"},
		{6, "Awesome! 6-day streak — consistency is your superpower 💪"},
		{7, "Unstoppable! 7-day streak — you’re on fire! ⚡"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, progression.Motivation(tt.streak), "streak %d", tt.streak)
	}
}

func TestLevelFor(t *testing.T) {
	level, next := progression.LevelFor(0)
	assert.Equal(t, 1, level)
	assert.Equal(t, 100, next)

	level, next = progression.LevelFor(250)
	assert.Equal(t, 3, level)
	assert.Equal(t, 50, next)

	level, next = progression.LevelFor(100)
	assert.Equal(t, 2, level)
	assert.Equal(t, 100, next)
}

func TestStudyXP(t *testing.T) {
	assert.Equal(t, 0, progression.StudyXP(0))
	assert.Equal(t, 5, progression.StudyXP(2))
	assert.Equal(t, 45, progression.StudyXP(45))
	assert.Equal(t, 120, progression.StudyXP(600))
}
