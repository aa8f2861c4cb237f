package assets

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Art is a block of text drawn cell by cell on terminal backends.
type Art struct {
	Lines  []string
	Width  int // Longest line, in runes
	Height int
}

// ParseArt reads text art. Tabs become four spaces and trailing blank lines
// are dropped.
func ParseArt(data []byte) (Art, error) {
	if !utf8.Valid(data) {
		return Art{}, errors.New("art is not valid UTF-8")
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", "    ")
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return Art{}, errors.New("art is empty")
	}

	a := Art{Lines: lines, Height: len(lines)}
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > a.Width {
			a.Width = n
		}
	}
	return a, nil
}

var mirrored = map[rune]rune{
	'<': '>', '>': '<',
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'/': '\\', '\\': '/',
}

// Mirror returns the art flipped horizontally. Lines are padded to the full
// width first so the block stays aligned.
func (a Art) Mirror() Art {
	out := Art{Lines: make([]string, len(a.Lines)), Width: a.Width, Height: a.Height}
	for i, l := range a.Lines {
		runes := []rune(l)
		for len(runes) < a.Width {
			runes = append(runes, ' ')
		}
		flipped := make([]rune, len(runes))
		for j, r := range runes {
			if m, ok := mirrored[r]; ok {
				r = m
			}
			flipped[len(runes)-1-j] = r
		}
		out.Lines[i] = string(flipped)
	}
	return out
}
