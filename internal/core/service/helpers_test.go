package service

import (
	"context"
	"strings"
	"unicode"

	"github.com/shaladi/reuse/internal/core/domain"
)

// wordTagger is a tiny deterministic tagger: sentences end at ". ", punctuation is split off,
// and tags come from a word list or the word's shape.
type wordTagger struct{}

var (
	testPrepositions = map[string]bool{"in": true, "at": true, "on": true, "near": true, "from": true, "outside": true, "by": true}
	testAdjectives   = map[string]bool{"free": true, "old": true, "large": true, "small": true}
)

func (wordTagger) Tag(_ context.Context, text string) ([][]domain.TaggedWord, error) {
	var sentences [][]domain.TaggedWord
	for _, s := range strings.Split(text, ". ") {
		var sentence []domain.TaggedWord
		for _, raw := range strings.Fields(s) {
			word := strings.TrimRight(raw, ",.!?")
			if word != "" {
				sentence = append(sentence, domain.TaggedWord{Word: word, Tag: tagOf(word)})
			}
			if punct := raw[len(word):]; punct != "" {
				sentence = append(sentence, domain.TaggedWord{Word: punct, Tag: domain.PartOther})
			}
		}
		if len(sentence) > 0 {
			sentences = append(sentences, sentence)
		}
	}
	return sentences, nil
}

func tagOf(word string) domain.PartOfSpeech {
	lower := strings.ToLower(word)
	switch {
	case testPrepositions[lower]:
		return domain.PartPreposition
	case testAdjectives[lower]:
		return domain.PartAdjective
	case unicode.IsDigit(rune(word[0])):
		return domain.PartCardinal
	case unicode.IsUpper(rune(word[0])):
		return domain.PartProperNoun
	}
	return domain.PartOther
}

// subjectResolver resolves threads by exact subject.
type subjectResolver struct {
	threads map[string]*domain.Thread
	calls   []string
}

func (r *subjectResolver) Resolve(_ context.Context, email domain.RawEmail) (*domain.Thread, error) {
	r.calls = append(r.calls, email.Subject)
	return r.threads[email.Subject], nil
}
