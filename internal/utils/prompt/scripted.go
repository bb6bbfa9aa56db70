package prompt

import (
	"context"
	"fmt"

	"md/internal/domain/errconsts"
	"md/internal/domain/errs"
)

// Scripted answers prompts from a fixed list. An empty answer selects the default, as on the
// terminal. It records every question asked.
type Scripted struct {
	Answers []string
	Asked   []string
}

// NewScripted returns a prompter giving the answers in order.
func NewScripted(answers ...string) *Scripted {
	return &Scripted{Answers: answers}
}

// Choose implements Prompter.
func (s *Scripted) Choose(ctx context.Context, msg string, options []string, def int) (int, error) {
	answer, err := s.next(ctx, msg)
	if err != nil {
		return 0, err
	}
	idx, err := parseChoice(answer, options, def)
	if err != nil {
		return 0, &errs.InputError{Prompt: msg, Err: err}
	}
	return idx, nil
}

// Confirm implements Prompter.
func (s *Scripted) Confirm(ctx context.Context, msg string, def bool) (bool, error) {
	answer, err := s.next(ctx, msg)
	if err != nil {
		return false, err
	}
	ok, err := parseConfirm(answer, def)
	if err != nil {
		return false, &errs.InputError{Prompt: msg, Err: err}
	}
	return ok, nil
}

// Text implements Prompter.
func (s *Scripted) Text(ctx context.Context, msg, def string) (string, error) {
	answer, err := s.next(ctx, msg)
	if err != nil {
		return "", err
	}
	return parseText(answer, def), nil
}

func (s *Scripted) next(ctx context.Context, msg string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.Asked = append(s.Asked, msg)
	if len(s.Answers) == 0 {
		return "", &errs.InputError{Prompt: msg, Err: fmt.Errorf(errconsts.NoAnswer, msg)}
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}
