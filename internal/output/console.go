package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// ConsoleWriter renders a report in git-log style.
type ConsoleWriter struct{}

var (
	commitColor = color.New(color.FgYellow)
	metaColor   = color.New(color.Bold)
	addColor    = color.New(color.FgGreen)
	delColor    = color.New(color.FgRed)
	hunkColor   = color.New(color.FgCyan)
)

// Write renders every commit, with its patch when one was attached.
func (cw *ConsoleWriter) Write(w io.Writer, report *Report) error {
	for i, commit := range report.Commits {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := cw.writeCommit(w, commit); err != nil {
			return err
		}
	}
	return nil
}

func (cw *ConsoleWriter) writeCommit(w io.Writer, commit Commit) error {
	if _, err := commitColor.Fprintf(w, "commit %s\n", commit.ID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Author: %s <%s>\n", commit.Author.Name, commit.Author.Email)
	fmt.Fprintf(w, "Date:   %s\n", commit.Time)
	fmt.Fprintf(w, "\n    %s\n", commit.Summary)
	if commit.Body != nil {
		fmt.Fprintln(w)
		for _, line := range strings.Split(*commit.Body, "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
	if len(commit.Trailers) > 0 {
		fmt.Fprintln(w)
		for _, token := range sortedTokens(commit.Trailers) {
			for _, value := range commit.Trailers[token] {
				fmt.Fprintf(w, "    %s: %s\n", token, value)
			}
		}
	}

	if len(commit.Diff) == 0 {
		return nil
	}
	var text string
	if err := json.Unmarshal(commit.Diff, &text); err != nil || text == "" {
		return nil
	}
	fmt.Fprintln(w)
	return WriteColoredDiff(w, text)
}

// WriteColoredDiff prints patch text line by line with git's conventional
// coloring.
func WriteColoredDiff(w io.Writer, text string) error {
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		var err error
		switch {
		case strings.HasPrefix(line, "diff --git"),
			strings.HasPrefix(line, "index "),
			strings.HasPrefix(line, "new file mode"),
			strings.HasPrefix(line, "deleted file mode"),
			strings.HasPrefix(line, "old mode"),
			strings.HasPrefix(line, "new mode"),
			strings.HasPrefix(line, "similarity index"),
			strings.HasPrefix(line, "rename "),
			strings.HasPrefix(line, "--- "),
			strings.HasPrefix(line, "+++ "):
			_, err = metaColor.Fprintln(w, line)
		case strings.HasPrefix(line, "@@"):
			_, err = hunkColor.Fprintln(w, line)
		case strings.HasPrefix(line, "+"):
			_, err = addColor.Fprintln(w, line)
		case strings.HasPrefix(line, "-"):
			_, err = delColor.Fprintln(w, line)
		default:
			_, err = fmt.Fprintln(w, line)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func sortedTokens(trailers map[string][]string) []string {
	tokens := make([]string, 0, len(trailers))
	for token := range trailers {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
