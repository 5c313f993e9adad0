package domain

// PartOfSpeech is the coarse grammatical category the location extractor relies on.
type PartOfSpeech int

const (
	PartOther PartOfSpeech = iota
	PartCardinal
	PartProperNoun
	PartPreposition
	PartAdjective
)

type TaggedWord struct {
	Word string
	Tag  PartOfSpeech
}
