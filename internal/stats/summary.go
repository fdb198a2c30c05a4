package stats

// Summary is the flat statistics view served to clients.
type Summary struct {
	TotalSolved        int            `json:"total_solved"`
	TotalQuestions     int            `json:"total_questions"`
	EasySolved         int            `json:"easy_solved"`
	TotalEasy          int            `json:"total_easy"`
	MediumSolved       int            `json:"medium_solved"`
	TotalMedium        int            `json:"total_medium"`
	HardSolved         int            `json:"hard_solved"`
	TotalHard          int            `json:"total_hard"`
	AcceptanceRate     float64        `json:"acceptance_rate"`
	Ranking            int            `json:"ranking"`
	ContributionPoints int            `json:"contribution_points"`
	Reputation         int            `json:"reputation"`
	SubmissionCalendar map[string]int `json:"submission_calendar"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the outcome of one stats lookup. Exactly one variant is
// populated: Data on success, Message with a user-visible error otherwise.
type Result struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Data    *Summary `json:"data,omitempty"`
}

func Success(s Summary) *Result {
	return &Result{Status: StatusSuccess, Message: "retrieved", Data: &s}
}

func Failure(message string) *Result {
	return &Result{Status: StatusError, Message: message}
}

func (r *Result) OK() bool {
	return r.Status == StatusSuccess
}
