package leetcode

const queryUserProfile = `
query getUserProfile($username: String!) {
  allQuestionsCount {
    difficulty
    count
  }
  matchedUser(username: $username) {
    contributions {
      points
    }
    profile {
      reputation
      ranking
    }
    submissionCalendar
    submitStats {
      acSubmissionNum {
        difficulty
        count
        submissions
      }
      totalSubmissionNum {
        difficulty
        count
        submissions
      }
    }
  }
}
`

// StatsQuery is the request body for the user profile query. Built fresh
// per request; the username is forwarded verbatim as a GraphQL variable.
type StatsQuery struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName,omitempty"`
}

func NewStatsQuery(username string) StatsQuery {
	return StatsQuery{
		Query:         queryUserProfile,
		OperationName: "getUserProfile",
		Variables: map[string]interface{}{
			"username": username,
		},
	}
}
