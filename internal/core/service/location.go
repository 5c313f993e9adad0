package service

import (
	"context"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/shaladi/reuse/internal/core/domain"
	"github.com/shaladi/reuse/internal/core/port"
)

// buildingCode matches room and building identifiers such as 32-G882, E62-250, W20 or E-62.
var buildingCode = regexp.MustCompile(`^(?:[ENWOC]{1,2}-?)?\d+(?:-[DG]?\d{2,})?$`)

// LocationExtractor picks the most likely building or room code out of free text.
type LocationExtractor struct {
	tagger port.Tagger
}

func NewLocationExtractor(tagger port.Tagger) *LocationExtractor {
	return &LocationExtractor{tagger: tagger}
}

// Extract returns the longest accepted location candidate, the first one on ties,
// or "" when there is none or tagging failed.
func (l *LocationExtractor) Extract(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	sentences, err := l.tagger.Tag(ctx, text)
	if err != nil {
		log.WithError(err).Warn("Tagging failed, skipping location extraction")
		return ""
	}

	var best string
	for _, sentence := range sentences {
		for i, tw := range sentence {
			if !isCandidate(tw) || !acceptedAt(sentence, i) {
				continue
			}
			if len(tw.Word) > len(best) {
				best = tw.Word
			}
		}
	}
	return best
}

func isCandidate(tw domain.TaggedWord) bool {
	if tw.Tag != domain.PartCardinal && tw.Tag != domain.PartProperNoun {
		return false
	}
	return buildingCode.MatchString(tw.Word)
}

func acceptedAt(sentence []domain.TaggedWord, i int) bool {
	switch {
	case i > 0 && sentence[i-1].Tag == domain.PartPreposition:
		return true
	case i > 1 && isPlaceNoun(sentence[i-1].Word) && sentence[i-2].Tag == domain.PartPreposition:
		return true
	case i == 1 && sentence[0].Tag == domain.PartAdjective:
		return true
	}
	return false
}

func isPlaceNoun(word string) bool {
	w := strings.ToLower(word)
	return w == "room" || w == "building"
}
