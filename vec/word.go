package vec

// Vocabulary maps already tokenized words to row indices of Parameters.
// Indices follow first appearance in the corpus.
type Vocabulary struct {
	index  map[string]int
	words  []string
	counts []int
}

func NewVocabulary(sentences [][]string) *Vocabulary {
	v := &Vocabulary{index: make(map[string]int)}
	for _, sentence := range sentences {
		for _, word := range sentence {
			i, ok := v.index[word]
			if !ok {
				i = len(v.words)
				v.index[word] = i
				v.words = append(v.words, word)
				v.counts = append(v.counts, 0)
			}
			v.counts[i]++
		}
	}
	return v
}

func (v *Vocabulary) Size() int {
	return len(v.words)
}

// Lookup returns the index of word and whether it is known.
func (v *Vocabulary) Lookup(word string) (int, bool) {
	i, ok := v.index[word]
	return i, ok
}

// Word is the word at index i. Like slice indexing, it panics when i is
// outside [0, Size()); use Lookup for the checked direction.
func (v *Vocabulary) Word(i int) string {
	return v.words[i]
}

// Count is how often word i occurred in the corpus the vocabulary was built
// from. It panics when i is outside [0, Size()).
func (v *Vocabulary) Count(i int) int {
	return v.counts[i]
}

// Index converts a tokenized sentence to word indices, dropping unknown words.
func (v *Vocabulary) Index(sentence []string) []int {
	out := make([]int, 0, len(sentence))
	for _, word := range sentence {
		if i, ok := v.index[word]; ok {
			out = append(out, i)
		}
	}
	return out
}

// IndexAll applies Index to every sentence.
func (v *Vocabulary) IndexAll(sentences [][]string) [][]int {
	out := make([][]int, len(sentences))
	for i, sentence := range sentences {
		out[i] = v.Index(sentence)
	}
	return out
}
