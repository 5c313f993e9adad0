package tagger

import (
	"context"
	"fmt"

	"github.com/jdkato/prose/v2"

	"github.com/shaladi/reuse/internal/core/domain"
)

// ProseTagger tags English text with the averaged perceptron model bundled in prose.
type ProseTagger struct{}

func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

func (t *ProseTagger) Tag(ctx context.Context, text string) ([][]domain.TaggedWord, error) {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to segment text: %w", err)
	}

	sentences := make([][]domain.TaggedWord, 0, len(doc.Sentences()))
	for _, s := range doc.Sentences() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sdoc, err := prose.NewDocument(s.Text,
			prose.WithSegmentation(false),
			prose.WithExtraction(false),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to tag sentence: %w", err)
		}

		tokens := sdoc.Tokens()
		sentence := make([]domain.TaggedWord, 0, len(tokens))
		for _, tok := range tokens {
			sentence = append(sentence, domain.TaggedWord{Word: tok.Text, Tag: FromPennTag(tok.Tag)})
		}
		if len(sentence) > 0 {
			sentences = append(sentences, sentence)
		}
	}
	return sentences, nil
}

// FromPennTag maps a Penn Treebank tag onto the categories the location extractor uses.
func FromPennTag(tag string) domain.PartOfSpeech {
	switch tag {
	case "CD":
		return domain.PartCardinal
	case "NNP", "NNPS":
		return domain.PartProperNoun
	case "IN":
		return domain.PartPreposition
	case "JJ", "JJR", "JJS":
		return domain.PartAdjective
	}
	return domain.PartOther
}
