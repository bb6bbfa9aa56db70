// Package prompt asks the user questions on the terminal.
package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Prompter asks questions that each have a default. An empty answer selects the default.
type Prompter interface {
	// Choose returns the index of the selected option.
	Choose(ctx context.Context, msg string, options []string, def int) (int, error)
	Confirm(ctx context.Context, msg string, def bool) (bool, error)
	Text(ctx context.Context, msg, def string) (string, error)
}

// parseChoice resolves an answer to an option index. Answers may be a 1-based number or an
// option's text.
func parseChoice(answer string, options []string, def int) (int, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return def, nil
	}
	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(options) {
			return 0, fmt.Errorf("choose a number between 1 and %d", len(options))
		}
		return n - 1, nil
	}
	for i, opt := range options {
		if strings.EqualFold(opt, answer) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%q is not one of the options", answer)
}

// parseConfirm resolves a yes/no answer.
func parseConfirm(answer string, def bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("answer y or n")
	}
}

// parseText returns the default for an empty answer.
func parseText(answer, def string) string {
	if answer = strings.TrimSpace(answer); answer == "" {
		return def
	}
	return answer
}
