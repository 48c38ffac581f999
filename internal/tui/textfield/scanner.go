package textfield

import "unicode"

// wordClass partitions non-whitespace runes for word motions.
type wordClass int

const (
	classSpace wordClass = iota
	classWord
	classPunct
)

func classify(r rune) wordClass {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case unicode.IsLetter(r) || unicode.IsNumber(r):
		return classWord
	default:
		return classPunct
	}
}

// NextWordStart returns the rune index of the start of the next word in line,
// scanning forward from col. It reports false when no further word starts
// on this line.
func NextWordStart(line string, col int) (int, bool) {
	runes := []rune(line)
	if col < 0 || col >= len(runes) {
		return 0, false
	}

	ref := classify(runes[col])
	if ref == classSpace {
		for i := col + 1; i < len(runes); i++ {
			if classify(runes[i]) != classSpace {
				return i, true
			}
		}
		return 0, false
	}

	crossedSpace := false
	for i := col + 1; i < len(runes); i++ {
		c := classify(runes[i])
		if c == classSpace {
			crossedSpace = true
			continue
		}
		if c != ref || crossedSpace {
			return i, true
		}
	}
	return 0, false
}

// PrevWordStart returns the rune index of the start of the word at or before
// col-1. Leading whitespace with nothing before it resolves to index 0.
func PrevWordStart(line string, col int) (int, bool) {
	runes := []rune(line)
	if col <= 0 {
		return 0, false
	}
	if col > len(runes) {
		col = len(runes)
	}

	i := col - 1
	for i >= 0 && classify(runes[i]) == classSpace {
		i--
	}
	if i < 0 {
		return 0, true
	}

	ref := classify(runes[i])
	for i > 0 && classify(runes[i-1]) == ref {
		i--
	}
	return i, true
}

// firstNonSpace returns the index of the first non-whitespace rune.
func firstNonSpace(line string) (int, bool) {
	i := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			return i, true
		}
		i++
	}
	return 0, false
}
