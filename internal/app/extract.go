package app

import (
	"encoding/json"
	"sort"
	"strings"

	"ai-quiz-service/internal/domain"
)

// ExtractQuestions locates the question set embedded in raw model text. The
// text may wrap the JSON in prose or markdown code fences; fences are
// stripped first, then every bracket-balanced "array of object literals"
// substring becomes a candidate. Candidates are ranked longest-first (a
// shorter match is typically truncated or partial) with first-occurring as
// the tie-break, and the first candidate that parses wins.
func ExtractQuestions(text string) ([]map[string]any, error) {
	cleaned := stripCodeFences(text)

	candidates := arrayCandidates(cleaned)
	if len(candidates) == 0 {
		return nil, domain.ErrNoQuestionArray
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if len(candidates[i].text) != len(candidates[j].text) {
			return len(candidates[i].text) > len(candidates[j].text)
		}
		return candidates[i].start < candidates[j].start
	})

	for _, c := range candidates {
		var parsed []map[string]any
		if err := json.Unmarshal([]byte(c.text), &parsed); err == nil {
			return parsed, nil
		}
	}
	return nil, domain.ErrUnparsableQuestions
}

func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	return strings.ReplaceAll(text, "```", "")
}

type candidate struct {
	start int
	text  string
}

// arrayCandidates collects every balanced [ ... ] substring whose first
// element is an object literal. Nested arrays of objects produce their own
// candidates; ranking sorts that out.
func arrayCandidates(s string) []candidate {
	var out []candidate
	for start := 0; start < len(s); start++ {
		if s[start] != '[' || !objectFollows(s, start+1) {
			continue
		}
		if end, ok := matchBracket(s, start); ok {
			out = append(out, candidate{start: start, text: s[start : end+1]})
		}
	}
	return out
}

func objectFollows(s string, i int) bool {
	for ; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// matchBracket walks from the opening '[' at start to its balancing ']',
// skipping string literals and their escapes. Returns false when the text
// ends or mismatches before the array closes.
func matchBracket(s string, start int) (int, bool) {
	var stack []byte
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[', '{':
			stack = append(stack, c)
		case ']':
			if len(stack) == 0 || stack[len(stack)-1] != '[' {
				return 0, false
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return i, true
			}
		case '}':
			if len(stack) == 0 || stack[len(stack)-1] != '{' {
				return 0, false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return 0, false
}
