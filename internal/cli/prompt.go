package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Confirm asks question on the terminal and reports whether the user
// answered yes. Ctrl+C and Ctrl+D count as no.
func Confirm(question string) (bool, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          question + " [y/N] ",
		InterruptPrompt: "^C",
		EOFPrompt:       "no",
	})
	if err != nil {
		return false, fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()

	line, err := rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("readline error: %w", err)
	}
	return isAffirmative(line), nil
}

func isAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
