package journal

import "strings"

// MoodCategory groups moods by valence.
type MoodCategory string

// Mood categories.
const (
	MoodPositive MoodCategory = "Positive"
	MoodNeutral  MoodCategory = "Neutral"
	MoodNegative MoodCategory = "Negative"
	MoodUnknown  MoodCategory = "Unknown"
)

// Known moods per category.
var (
	PositiveMoods = []string{"Happy", "Excited", "Grateful", "Hopeful", "Peaceful", "Energetic", "Inspired", "Loved"}
	NeutralMoods  = []string{"Calm", "Neutral", "Curious", "Focused", "Determined", "Patient"}
	NegativeMoods = []string{"Sad", "Angry", "Frustrated", "Anxious", "Tired", "Confused", "Disappointed", "Stressed"}
)

// moodColors are the badge colors used when rendering moods.
var moodColors = map[MoodCategory]string{
	MoodPositive: "#28a745",
	MoodNeutral:  "#6c757d",
	MoodNegative: "#dc3545",
	MoodUnknown:  "#667eea",
}

// MoodCategoryOf returns the category of a mood. Matching ignores case.
func MoodCategoryOf(mood string) MoodCategory {
	switch {
	case containsFold(PositiveMoods, mood):
		return MoodPositive
	case containsFold(NeutralMoods, mood):
		return MoodNeutral
	case containsFold(NegativeMoods, mood):
		return MoodNegative
	default:
		return MoodUnknown
	}
}

// MoodColor returns the hex badge color for a mood.
func MoodColor(mood string) string {
	return moodColors[MoodCategoryOf(mood)]
}

func containsFold(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}
