package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"mentis/internal/engine"
	"mentis/internal/task"
)

// runPlainSession drives a session over line-based input. Each prompt is
// printed once and one line is read for the answer; an empty line passes
// the trial without responding. Response windows are not enforced here,
// the live UI owns timed play.
func runPlainSession(session task.Session, input *bufio.Scanner, stdout io.Writer) (engine.Result, error) {
	fmt.Fprintf(stdout, "\n== %s (level %d) ==\n", session.Title(), session.Level())
	session.Start()

	for !session.IsComplete() {
		prompt, ok := session.Prompt()
		if !ok {
			break
		}
		if prompt.Phase == engine.PhaseStudy {
			printPrompt(stdout, prompt)
			fmt.Fprint(stdout, "press enter when memorized: ")
			if _, err := readLine(input); err != nil {
				return engine.Result{}, err
			}
			session.FinishStudy()
			continue
		}

		printPrompt(stdout, prompt)
		fmt.Fprint(stdout, "> ")
		line, err := readLine(input)
		if err != nil {
			return engine.Result{}, err
		}
		answer := strings.TrimSpace(line)
		if answer == "" {
			session.Advance()
			fmt.Fprintln(stdout, "passed")
			continue
		}
		feedback, accepted := session.Respond(answer)
		if !accepted {
			fmt.Fprintf(stdout, "not a valid answer: %s\n", answer)
			continue
		}
		session.Advance()
		if feedback.Correct {
			fmt.Fprintln(stdout, "correct")
		} else {
			fmt.Fprintln(stdout, "incorrect")
		}
	}

	result := session.Result()
	fmt.Fprintf(stdout, "Score %.2f | Accuracy %.0f%% | %d/%d correct\n",
		result.Score, result.Accuracy*100, result.CorrectCount, result.TrialCount)
	return result, nil
}

// printPrompt writes the trial stimulus and its choices.
func printPrompt(stdout io.Writer, prompt task.Prompt) {
	fmt.Fprintf(stdout, "[%d/%d] %s\n", prompt.Index+1, prompt.Total, prompt.Text)
	if prompt.Detail != "" {
		fmt.Fprintln(stdout, prompt.Detail)
	}
	if len(prompt.Options) > 0 {
		parts := make([]string, 0, len(prompt.Options))
		for _, option := range prompt.Options {
			parts = append(parts, "["+option.Key+"] "+option.Label)
		}
		fmt.Fprintln(stdout, strings.Join(parts, "  "))
	}
}

// readLine pulls one line from the scanner, treating EOF as an error so
// scripted input that runs short aborts the session cleanly.
func readLine(input *bufio.Scanner) (string, error) {
	if !input.Scan() {
		if err := input.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return input.Text(), nil
}
