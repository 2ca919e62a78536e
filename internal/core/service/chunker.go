package service

import (
	"strings"
	"unicode/utf8"
)

// Chunk splits text into pieces of at most maxLength runes.
//
// Separators are tried in priority order: the text is split on the first separator it contains,
// adjacent pieces are merged back while they fit, and any piece that is still too long is split
// again with the separators that follow. The empty separator cuts at exactly maxLength runes and
// is used when no other separator applies. Every chunk is trimmed, empty chunks are dropped, and
// whitespace-only input yields no chunks.
func Chunk(text string, maxLength int, separators []string) []string {
	if maxLength < 1 {
		maxLength = 1
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if utf8.RuneCountInString(text) <= maxLength {
		return []string{text}
	}

	return splitText(text, maxLength, separators)
}

func splitText(text string, maxLength int, separators []string) []string {
	separator, remaining := pickSeparator(text, separators)

	var pieces []string
	if separator == "" {
		pieces = cutRunes(text, maxLength)
	} else {
		pieces = strings.Split(text, separator)
	}

	separatorLength := utf8.RuneCountInString(separator)

	var (
		chunks        []string
		current       strings.Builder
		currentLength int
		started       bool
	)

	flush := func() {
		if chunk := strings.TrimSpace(current.String()); chunk != "" {
			chunks = append(chunks, chunk)
		}

		current.Reset()
		currentLength = 0
		started = false
	}

	for _, piece := range pieces {
		pieceLength := utf8.RuneCountInString(piece)

		if pieceLength > maxLength {
			flush()
			chunks = append(chunks, splitText(piece, maxLength, remaining)...)
			continue
		}

		if started && currentLength+separatorLength+pieceLength > maxLength {
			flush()
		}

		if started {
			current.WriteString(separator)
			currentLength += separatorLength
		}

		current.WriteString(piece)
		currentLength += pieceLength
		started = true
	}

	flush()

	return chunks
}

// pickSeparator returns the first separator found in text and the separators after it.
func pickSeparator(text string, separators []string) (string, []string) {
	for i, separator := range separators {
		if separator == "" || strings.Contains(text, separator) {
			return separator, separators[i+1:]
		}
	}

	return "", nil
}

func cutRunes(text string, size int) []string {
	runes := []rune(text)
	pieces := make([]string, 0, len(runes)/size+1)

	for start := 0; start < len(runes); start += size {
		end := min(start+size, len(runes))
		pieces = append(pieces, string(runes[start:end]))
	}

	return pieces
}
