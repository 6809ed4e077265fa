package git

import (
	"regexp"
	"strings"
)

// trailerLine matches a conventional "Token: value" trailer line.
var trailerLine = regexp.MustCompile(`^([A-Za-z0-9-]+):[ \t]+(.*)$`)

// ParsedMessage is the decomposition of a commit message into its summary,
// optional body and trailer block.
type ParsedMessage struct {
	Summary string
	// Body is the message between the summary and the trailer block with
	// surrounding whitespace trimmed. Empty means absent: a present-but-empty
	// body cannot occur after trimming.
	Body string
	// Trailers maps a trailer token to its distinct values in first-seen
	// order. Repeated identical pairs collapse; repeated tokens with
	// differing values accumulate.
	Trailers map[string][]string
}

// ParseMessage splits a raw commit message into summary, body and trailers.
// It is pure: the input is never modified and the result shares no state
// with the caller.
func ParseMessage(message string) ParsedMessage {
	normalized := strings.ReplaceAll(message, "\r\n", "\n")

	summary := normalized
	rest := ""
	if idx := strings.IndexByte(normalized, '\n'); idx != -1 {
		summary = normalized[:idx]
		rest = normalized[idx+1:]
	}
	summary = strings.TrimSpace(summary)

	trailerBlock, body := splitTrailerBlock(rest)

	trailers := make(map[string][]string)
	for _, line := range trailerBlock {
		m := trailerLine.FindStringSubmatch(line)
		token, value := m[1], strings.TrimSpace(m[2])
		if !containsString(trailers[token], value) {
			trailers[token] = append(trailers[token], value)
		}
	}

	return ParsedMessage{
		Summary:  summary,
		Body:     strings.TrimSpace(body),
		Trailers: trailers,
	}
}

// splitTrailerBlock separates the trailing trailer paragraph from the rest
// of the message body. The trailer block is the last paragraph, and only
// qualifies when every one of its lines is a trailer line.
func splitTrailerBlock(body string) (trailers []string, remainder string) {
	trimmed := strings.TrimRight(body, " \t\n")
	if trimmed == "" {
		return nil, ""
	}

	lines := strings.Split(trimmed, "\n")

	// Find the start of the last paragraph.
	start := 0
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) == "" {
			start = i + 1
			break
		}
	}

	block := lines[start:]
	if len(block) == 0 {
		return nil, trimmed
	}
	for _, line := range block {
		if !trailerLine.MatchString(line) {
			return nil, trimmed
		}
	}

	return block, strings.Join(lines[:start], "\n")
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
