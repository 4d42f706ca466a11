package release

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	shipiterrors "shipit.dev/shipit/internal/errors"
)

// Prompter abstracts all interactive input so the workflow can be
// driven by scripted answers in tests.
type Prompter interface {
	// Confirm asks a yes/no question with the given default
	Confirm(message string, defaultYes bool) (bool, error)

	// Input asks for a free-text answer with the given default
	Input(message, defaultValue string) (string, error)

	// Select presents numbered options and returns the chosen index
	Select(message string, options []string) (int, error)
}

// SurveyPrompter implements Prompter on top of survey
type SurveyPrompter struct{}

// NewSurveyPrompter creates the interactive terminal prompter
func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{}
}

// Confirm asks a yes/no question
func (p *SurveyPrompter) Confirm(message string, defaultYes bool) (bool, error) {
	var answer bool
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultYes,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, mapSurveyError(err)
	}
	return answer, nil
}

// Input asks for a free-text answer
func (p *SurveyPrompter) Input(message, defaultValue string) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", mapSurveyError(err)
	}
	return answer, nil
}

// Select presents a menu and returns the chosen index
func (p *SurveyPrompter) Select(message string, options []string) (int, error) {
	var index int
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(prompt, &index); err != nil {
		return 0, mapSurveyError(err)
	}
	return index, nil
}

// mapSurveyError converts ctrl-c interrupts into the workflow cancel error
func mapSurveyError(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return shipiterrors.ErrCanceled
	}
	return err
}
