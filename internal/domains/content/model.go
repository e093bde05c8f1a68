// Package content wraps the seven external sources a daily edition is
// enriched with. Every adapter normalizes its upstream payload into one of
// the shapes below and substitutes a fixed fallback on any failure, so a
// broken third party can never break a publish.
package content

// Poem is a cleaned poem from PoetryDB.
type Poem struct {
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Lines  []string `json:"lines"`
}

// Joke kinds. JokeAPI delivers either a one-liner or a setup/delivery pair;
// the Kind field is the discriminator.
const (
	JokeSingle  = "single"
	JokeTwoPart = "twopart"
)

// Joke is a tagged union: Kind selects which of the remaining fields carry
// the joke. Text for single, Setup/Delivery for twopart.
type Joke struct {
	Kind     string `json:"kind"`
	Text     string `json:"text,omitempty"`
	Setup    string `json:"setup,omitempty"`
	Delivery string `json:"delivery,omitempty"`
}

// Activity is a suggested activity, description lower-cased.
type Activity struct {
	Description string `json:"description"`
}

// Fact is a single trivia fact (cat, dog, or general).
type Fact struct {
	Fact string `json:"fact"`
}

// Comic is a reference to a scraped comic strip. ImageURL is nil when no
// strip could be resolved; the bytes are never embedded, unlike the photo.
type Comic struct {
	ImageURL *string `json:"imageUrl"`
	AltText  string  `json:"altText"`
}

// Daily bundles the output of all seven adapters for one edition.
type Daily struct {
	Poem       Poem     `json:"poem"`
	Joke       Joke     `json:"joke"`
	Activity   Activity `json:"activity"`
	CatFact    Fact     `json:"catFact"`
	DogFact    Fact     `json:"dogFact"`
	TriviaFact Fact     `json:"triviaFact"`
	Comic      Comic    `json:"comic"`
}
