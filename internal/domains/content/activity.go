package content

import (
	"context"
	"fmt"
	"strings"
)

type boredAPIResponse struct {
	Activity string `json:"activity"`
}

// FetchActivity requests one random activity suggestion and lower-cases the
// description before storing.
func (s *HTTPService) FetchActivity(ctx context.Context) (Activity, error) {
	var resp boredAPIResponse
	if err := s.getJSON(ctx, s.activityURL, &resp); err != nil {
		return FallbackActivity(), err
	}
	if resp.Activity == "" {
		return FallbackActivity(), fmt.Errorf("boredapi: empty activity")
	}
	return Activity{Description: strings.ToLower(resp.Activity)}, nil
}
