package leetcode

// statsEnvelope is the raw GraphQL response. Every field is optional:
// absent or null fields decode to zero values rather than failing.
type statsEnvelope struct {
	Data   *StatsData `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type StatsData struct {
	AllQuestionsCount []QuestionCount `json:"allQuestionsCount"`
	MatchedUser       *MatchedUser    `json:"matchedUser"`
}

type QuestionCount struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

type MatchedUser struct {
	Contributions Contributions `json:"contributions"`
	Profile       Profile       `json:"profile"`
	// submissionCalendar is a JSON-encoded object shipped as a string.
	SubmissionCalendar string      `json:"submissionCalendar"`
	SubmitStats        SubmitStats `json:"submitStats"`
}

type Contributions struct {
	Points int `json:"points"`
}

type Profile struct {
	Reputation int `json:"reputation"`
	Ranking    int `json:"ranking"`
}

type SubmitStats struct {
	ACSubmissionNum    []SubmissionCount `json:"acSubmissionNum"`
	TotalSubmissionNum []SubmissionCount `json:"totalSubmissionNum"`
}

type SubmissionCount struct {
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
	Submissions int    `json:"submissions"`
}
