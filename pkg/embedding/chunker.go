package embedding

import (
	"strings"
	"unicode/utf8"
)

// SplitText cuts text into chunks of at most size runes, cutting on whitespace,
// with about overlap runes repeated between consecutive chunks.
func SplitText(text string, size, overlap int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if size <= 0 {
		size = 1024
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	var chunks []string
	start := 0
	for start < len(words) {
		length := 0
		end := start
		for end < len(words) {
			w := utf8.RuneCountInString(words[end])
			if end > start {
				w++
			}
			if length+w > size && end > start {
				break
			}
			length += w
			end++
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
		if end >= len(words) {
			break
		}

		// step back over roughly overlap runes, always moving forward by at least one word
		next := end
		back := 0
		for next > start+1 {
			w := utf8.RuneCountInString(words[next-1]) + 1
			if back+w > overlap {
				break
			}
			back += w
			next--
		}
		start = next
	}
	return chunks
}
