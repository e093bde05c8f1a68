package content

import (
	"context"
	"fmt"
)

// Three single-purpose fact sources, each with its own response shape and
// each passing the fact text through unchanged.

type catFactResponse struct {
	Fact string `json:"fact"`
}

func (s *HTTPService) FetchCatFact(ctx context.Context) (Fact, error) {
	var resp catFactResponse
	if err := s.getJSON(ctx, s.catFactURL, &resp); err != nil {
		return FallbackCatFact(), err
	}
	if resp.Fact == "" {
		return FallbackCatFact(), fmt.Errorf("catfact: empty fact")
	}
	return Fact{Fact: resp.Fact}, nil
}

// dogapi.dog wraps facts in a JSON:API envelope.
type dogFactResponse struct {
	Data []struct {
		Attributes struct {
			Body string `json:"body"`
		} `json:"attributes"`
	} `json:"data"`
}

func (s *HTTPService) FetchDogFact(ctx context.Context) (Fact, error) {
	var resp dogFactResponse
	if err := s.getJSON(ctx, s.dogFactURL, &resp); err != nil {
		return FallbackDogFact(), err
	}
	if len(resp.Data) == 0 || resp.Data[0].Attributes.Body == "" {
		return FallbackDogFact(), fmt.Errorf("dogapi: no facts in response")
	}
	return Fact{Fact: resp.Data[0].Attributes.Body}, nil
}

type uselessFactResponse struct {
	Text string `json:"text"`
}

func (s *HTTPService) FetchTriviaFact(ctx context.Context) (Fact, error) {
	var resp uselessFactResponse
	if err := s.getJSON(ctx, s.triviaFactURL, &resp); err != nil {
		return FallbackTriviaFact(), err
	}
	if resp.Text == "" {
		return FallbackTriviaFact(), fmt.Errorf("uselessfacts: empty fact")
	}
	return Fact{Fact: resp.Text}, nil
}
