package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/ivasik-k7/leetcode-stats/internal/leetcode"
)

type Service struct {
	LC *leetcode.Client
}

func NewService(lc *leetcode.Client) *Service {
	return &Service{LC: lc}
}

// GetStats runs one lookup end to end: build the query, call the upstream,
// translate the payload. Failures come back as an error Result whose
// message is served verbatim to the client.
func (s *Service) GetStats(ctx context.Context, username string) *Result {
	q := leetcode.NewStatsQuery(username)

	data, err := s.LC.FetchStats(ctx, q)
	if err != nil {
		return Failure(messageFor(err))
	}

	return Success(Translate(data))
}

func messageFor(err error) string {
	var transport *leetcode.TransportError
	if errors.As(err, &transport) {
		return fmt.Sprintf("Request failed: %v", transport.Err)
	}
	if errors.Is(err, leetcode.ErrDecode) {
		return "Failed to decode JSON response"
	}
	var shape *leetcode.ShapeError
	if errors.As(err, &shape) {
		return fmt.Sprintf("Data processing error: %v", shape.Err)
	}
	return fmt.Sprintf("An unexpected error occurred: %v", err)
}
