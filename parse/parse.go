// Package parse turns a raw chat message into command input: prefix detection
// tells the caller whether a message is an invocation at all and how many
// leading characters to discard, and the tokenizer splits the remainder into
// argument tokens honoring double-quote grouping.
package parse

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// HasLiteralPrefix reports whether text starts with prefix and, if so, how
// many leading characters to discard. The prefix must be strictly shorter
// than the message, so a bare prefix with nothing after it never matches.
func HasLiteralPrefix(text, prefix string) (int, bool) {
	if len(prefix) >= len(text) || !strings.HasPrefix(text, prefix) {
		return 0, false
	}
	return len(prefix), true
}

// HasMentionPrefix reports whether text starts with a mention of the user
// with the given numeric ID, in the <@id> or <@!id> form, followed by a
// separating space. The consumed length includes that space.
func HasMentionPrefix(text, userID string) (int, bool) {
	if !strings.HasPrefix(text, "<@") {
		return 0, false
	}
	end := strings.IndexByte(text, '>')
	if end == -1 {
		return 0, false
	}
	if len(text) < end+2 || text[end+1] != ' ' {
		return 0, false
	}
	body := strings.TrimPrefix(text[2:end], "!")
	id, err := strconv.ParseUint(body, 10, 64)
	if err != nil {
		return 0, false
	}
	want, err := strconv.ParseUint(userID, 10, 64)
	if err != nil || id != want {
		return 0, false
	}
	return end + 2, true
}

// Tokenize returns a lazy sequence of argument tokens from text. The input is
// split on single spaces; a piece starting with a double quote opens a quoted
// token that absorbs following pieces until one ends with an unescaped double
// quote. Only a backslash immediately before a terminating quote is treated
// as an escape; backslashes elsewhere pass through untouched. A quote left
// open at the end of input drops the unterminated fragment. Consecutive
// spaces outside quotes produce empty tokens. The sequence is finite and
// restarts from the beginning on every range.
func Tokenize(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if strings.TrimSpace(text) == "" {
			return
		}
		var acc string
		inQuote := false
		for _, piece := range strings.Split(text, " ") {
			if !inQuote {
				switch {
				case len(piece) >= 2 && piece[0] == '"' && piece[len(piece)-1] == '"':
					if piece[len(piece)-2] == '\\' {
						// Trailing \" is a literal quote; the token stays open.
						acc = piece[1 : len(piece)-2] + `"`
						inQuote = true
						continue
					}
					if !yield(piece[1 : len(piece)-1]) {
						return
					}
				case len(piece) >= 1 && piece[0] == '"':
					acc = piece[1:]
					inQuote = true
				default:
					if !yield(piece) {
						return
					}
				}
				continue
			}
			if strings.HasSuffix(piece, `"`) {
				if len(piece) >= 2 && piece[len(piece)-2] == '\\' {
					acc += " " + piece[:len(piece)-2] + `"`
					continue
				}
				if !yield(acc + " " + piece[:len(piece)-1]) {
					return
				}
				acc = ""
				inQuote = false
				continue
			}
			acc += " " + piece
		}
		// An unterminated quote yields nothing for the dangling fragment.
	}
}

// Tokens materializes Tokenize(text) into a slice.
func Tokens(text string) []string {
	return slices.Collect(Tokenize(text))
}
