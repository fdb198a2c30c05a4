package stats

import (
	"encoding/json"
	"math"

	"github.com/ivasik-k7/leetcode-stats/internal/leetcode"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Translate reshapes the raw upstream payload into a Summary. Absent
// fields, a nil payload and an unknown user all yield zero values.
func Translate(data *leetcode.StatsData) Summary {
	if data == nil {
		data = &leetcode.StatsData{}
	}
	user := data.MatchedUser
	if user == nil {
		user = &leetcode.MatchedUser{}
	}

	questions := indexQuestions(data.AllQuestionsCount)
	accepted := indexSubmissions(user.SubmitStats.ACSubmissionNum)
	total := indexSubmissions(user.SubmitStats.TotalSubmissionNum)

	easySolved := accepted[DifficultyEasy].Count
	mediumSolved := accepted[DifficultyMedium].Count
	hardSolved := accepted[DifficultyHard].Count

	return Summary{
		TotalSolved:    easySolved + mediumSolved + hardSolved,
		TotalQuestions: sumQuestionCounts(data.AllQuestionsCount),
		EasySolved:     easySolved,
		TotalEasy:      questions[DifficultyEasy].Count,
		MediumSolved:   mediumSolved,
		TotalMedium:    questions[DifficultyMedium].Count,
		HardSolved:     hardSolved,
		TotalHard:      questions[DifficultyHard].Count,
		// The rate is computed from the Easy bucket's submission counts,
		// matching what the API has always reported.
		AcceptanceRate: acceptanceRate(
			accepted[DifficultyEasy].Submissions,
			total[DifficultyEasy].Submissions,
		),
		Ranking:            user.Profile.Ranking,
		ContributionPoints: user.Contributions.Points,
		Reputation:         user.Profile.Reputation,
		SubmissionCalendar: parseCalendar(user.SubmissionCalendar),
	}
}

func sumQuestionCounts(entries []leetcode.QuestionCount) int {
	sum := 0
	for _, e := range entries {
		sum += e.Count
	}
	return sum
}

// indexQuestions keeps the first entry per difficulty; later duplicates
// are ignored.
func indexQuestions(entries []leetcode.QuestionCount) map[Difficulty]leetcode.QuestionCount {
	idx := make(map[Difficulty]leetcode.QuestionCount, len(entries))
	for _, e := range entries {
		d := Difficulty(e.Difficulty)
		if _, ok := idx[d]; !ok {
			idx[d] = e
		}
	}
	return idx
}

func indexSubmissions(entries []leetcode.SubmissionCount) map[Difficulty]leetcode.SubmissionCount {
	idx := make(map[Difficulty]leetcode.SubmissionCount, len(entries))
	for _, e := range entries {
		d := Difficulty(e.Difficulty)
		if _, ok := idx[d]; !ok {
			idx[d] = e
		}
	}
	return idx
}

func acceptanceRate(accepted, total int) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(accepted) / float64(total) * 100
	return math.Round(rate*100) / 100
}

// parseCalendar decodes the nested JSON calendar string. A failed parse
// degrades to an empty calendar instead of failing the whole lookup.
// encoding/json serializes map keys in ascending order, which keeps the
// emitted calendar sorted by date key.
func parseCalendar(raw string) map[string]int {
	if raw == "" {
		return map[string]int{}
	}
	var calendar map[string]int
	if err := json.Unmarshal([]byte(raw), &calendar); err != nil {
		return map[string]int{}
	}
	if calendar == nil {
		return map[string]int{}
	}
	return calendar
}
