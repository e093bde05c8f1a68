package content

// Fixed fallback values, one per adapter. Returned whenever a source is
// unreachable, answers non-2xx, or sends a payload we cannot make sense of.
// A reader sees these instead of an error; freshness of any one sub-fact
// matters less than the edition existing at all.

func FallbackPoem() Poem {
	return Poem{
		Title:  "Hope is the thing with feathers",
		Author: "Emily Dickinson",
		Lines: []string{
			"Hope is the thing with feathers",
			"That perches in the soul,",
			"And sings the tune without the words,",
			"And never stops at all,",
		},
	}
}

func FallbackJoke() Joke {
	return Joke{
		Kind: JokeSingle,
		Text: "I would tell you a UDP joke, but you might not get it.",
	}
}

func FallbackActivity() Activity {
	return Activity{Description: "take a walk outside and notice something new"}
}

func FallbackCatFact() Fact {
	return Fact{Fact: "Cats sleep for around two thirds of their lives."}
}

func FallbackDogFact() Fact {
	return Fact{Fact: "A dog's sense of smell is tens of thousands of times more sensitive than a human's."}
}

func FallbackTriviaFact() Fact {
	return Fact{Fact: "Honey never spoils when stored sealed and dry."}
}

func FallbackComic() Comic {
	return Comic{ImageURL: nil, AltText: "Unable to load comic"}
}
