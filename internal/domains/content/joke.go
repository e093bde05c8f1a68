package content

import (
	"context"
	"fmt"
)

type jokeAPIResponse struct {
	Error    bool   `json:"error"`
	Type     string `json:"type"`
	Joke     string `json:"joke"`
	Setup    string `json:"setup"`
	Delivery string `json:"delivery"`
}

// FetchJoke asks JokeAPI for one random joke with the sensitive categories
// blacklisted (the flags are baked into the URL). The upstream two-shape
// result maps straight onto the Joke tagged union.
func (s *HTTPService) FetchJoke(ctx context.Context) (Joke, error) {
	var resp jokeAPIResponse
	if err := s.getJSON(ctx, s.jokeURL, &resp); err != nil {
		return FallbackJoke(), err
	}
	if resp.Error {
		return FallbackJoke(), fmt.Errorf("jokeapi: upstream reported an error payload")
	}

	switch resp.Type {
	case JokeSingle:
		if resp.Joke == "" {
			return FallbackJoke(), fmt.Errorf("jokeapi: empty single joke")
		}
		return Joke{Kind: JokeSingle, Text: resp.Joke}, nil
	case JokeTwoPart:
		if resp.Setup == "" || resp.Delivery == "" {
			return FallbackJoke(), fmt.Errorf("jokeapi: incomplete twopart joke")
		}
		return Joke{Kind: JokeTwoPart, Setup: resp.Setup, Delivery: resp.Delivery}, nil
	default:
		return FallbackJoke(), fmt.Errorf("jokeapi: unknown joke type %q", resp.Type)
	}
}
