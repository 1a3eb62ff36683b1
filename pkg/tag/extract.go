package tag

import (
	"errors"
	"strings"

	"github.com/jdkato/prose/v2"
	"github.com/jinzhu/inflection"
)

// ErrNoCandidates signals that a description yielded no tag candidates. The
// caller reports it informationally instead of offering an empty selection.
var ErrNoCandidates = errors.New("no nouns or names found in the description")

// NounExtractor produces candidate singular noun phrases from a sentence,
// with pronouns, possessives, uncountables, and demonyms already removed.
type NounExtractor interface {
	Nouns(text string) ([]string, error)
}

// Extract runs the extractor over a description and canonicalizes the result:
// each phrase is normalized, then dropped if it normalizes to nothing, if it
// is already in existing, or if it duplicates an earlier phrase from this
// call. Surviving phrases keep extraction order. Zero survivors is reported
// as ErrNoCandidates.
func Extract(ext NounExtractor, description string, existing []string) ([]string, error) {
	nouns, err := ext.Nouns(description)
	if err != nil {
		return nil, err
	}

	have := make(map[string]bool, len(existing))
	for _, t := range existing {
		have[t] = true
	}

	candidates := make([]string, 0, len(nouns))
	for _, noun := range nouns {
		t := Normalize(noun)
		if t == "" || have[t] {
			continue
		}
		have[t] = true
		candidates = append(candidates, t)
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	return candidates, nil
}

// uncountable mass nouns the tagger reports as NN but which make useless
// tags. Mirrors the exclusion the mobile app applied before matching nouns.
var uncountables = map[string]bool{
	"advice": true, "air": true, "fun": true, "furniture": true,
	"information": true, "knowledge": true, "luck": true, "luggage": true,
	"money": true, "music": true, "news": true, "progress": true,
	"rain": true, "research": true, "sleep": true, "stuff": true,
	"time": true, "traffic": true, "water": true, "weather": true,
	"work": true,
}

// common demonyms, also excluded from candidacy.
var demonyms = map[string]bool{
	"american": true, "australian": true, "brazilian": true, "british": true,
	"canadian": true, "chinese": true, "dutch": true, "english": true,
	"french": true, "german": true, "indian": true, "irish": true,
	"italian": true, "japanese": true, "mexican": true, "russian": true,
	"spanish": true, "swedish": true,
}

// ProseExtractor tags a description with prose and keeps singular forms of
// the noun tokens.
type ProseExtractor struct{}

var _ NounExtractor = ProseExtractor{}

func (ProseExtractor) Nouns(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}

	toks := doc.Tokens()
	nouns := make([]string, 0, len(toks))
	for i, tok := range toks {
		if !isNounTag(tok.Tag) {
			continue
		}
		// A trailing possessive marker means this noun is an owner, not a
		// subject, so it is skipped the way pronouns are.
		if i+1 < len(toks) && toks[i+1].Tag == "POS" {
			continue
		}
		word := strings.ToLower(tok.Text)
		if uncountables[word] || demonyms[word] {
			continue
		}
		if tok.Tag == "NNS" || tok.Tag == "NNPS" {
			word = inflection.Singular(word)
		}
		nouns = append(nouns, word)
	}
	return nouns, nil
}

func isNounTag(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}
