package vec

// CreateContext lists every (center, context) pair of sentence within
// contextSize positions, as two parallel slices. Pairs come position by
// position, offsets ascending from -contextSize to contextSize, skipping the
// center itself and anything past either end of the sentence.
func CreateContext(sentence []int, contextSize int) (inputs, outputs []int) {
	inputs, outputs = []int{}, []int{}
	if contextSize <= 0 {
		return inputs, outputs
	}
	for i, center := range sentence {
		for j := -contextSize; j <= contextSize; j++ {
			if j == 0 || i+j < 0 || i+j >= len(sentence) {
				continue
			}
			inputs = append(inputs, center)
			outputs = append(outputs, sentence[i+j])
		}
	}
	return inputs, outputs
}
