// Package lint checks decoded commit records against a message schema.
package lint

import (
	"fmt"
	"unicode"

	"github.com/gitchdev/gitch-go/config"
	"github.com/gitchdev/gitch-go/internal/git"
)

// Violation is one schema breach on one commit.
type Violation struct {
	CommitID string
	Message  string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.CommitID[:7], v.Message)
}

// Checker validates commit messages against a configured schema.
type Checker struct {
	cfg *config.Config
}

// NewChecker creates a checker for the given configuration.
func NewChecker(cfg *config.Config) *Checker {
	return &Checker{cfg: cfg}
}

// CheckCommit returns every schema violation on one commit's message.
func (c *Checker) CheckCommit(commit *git.Commit) []Violation {
	var violations []Violation
	report := func(format string, args ...any) {
		violations = append(violations, Violation{
			CommitID: commit.ID,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	c.checkSummary(commit, report)
	c.checkTrailers(commit, report)
	return violations
}

func (c *Checker) checkSummary(commit *git.Commit, report func(string, ...any)) {
	if commit.Summary == "" {
		report("summary is empty")
		return
	}

	first := []rune(commit.Summary)[0]
	switch c.cfg.Summary.FirstWordCapitalization {
	case "upper":
		if unicode.IsLetter(first) && !unicode.IsUpper(first) {
			report("summary %q should start with an uppercase letter", commit.Summary)
		}
	case "lower":
		if unicode.IsLetter(first) && !unicode.IsLower(first) {
			report("summary %q should start with a lowercase letter", commit.Summary)
		}
	}
}

func (c *Checker) checkTrailers(commit *git.Commit, report func(string, ...any)) {
	for token, rule := range c.cfg.Trailers {
		values, present := commit.Trailers[token]

		if !present {
			if rule.Mandatory {
				if match, ok := didYouMean(token, trailerTokens(commit)); ok {
					report("trailers[%q] not found but %q is mandatory (found similar field: %q)",
						token, token, match)
				} else {
					report("trailers[%q] not found but %q is mandatory", token, token)
				}
			}
			continue
		}

		if rule.Singular && len(values) > 1 {
			report("expected trailers[%q] to be singular instead it has length %d", token, len(values))
		}

		if len(rule.Values) > 0 {
			if unknown := unknownValues(values, rule.Values); len(unknown) > 0 {
				report("trailers[%q] has non-configured values %v", token, unknown)
			}
		}
	}
}

func trailerTokens(commit *git.Commit) []string {
	tokens := make([]string, 0, len(commit.Trailers))
	for token := range commit.Trailers {
		tokens = append(tokens, token)
	}
	return tokens
}

func unknownValues(values, allowed []string) []string {
	var unknown []string
	for _, v := range values {
		found := false
		for _, a := range allowed {
			if v == a {
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, v)
		}
	}
	return unknown
}
