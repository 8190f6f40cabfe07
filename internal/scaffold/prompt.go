package scaffold

import (
	"github.com/AlecAivazis/survey/v2"
)

// SurveyPrompter asks questions on the real terminal
type SurveyPrompter struct{}

func (SurveyPrompter) Input(message, defaultValue string, validate func(string) error) (string, error) {
	var answer string
	var opts []survey.AskOpt
	if validate != nil {
		// survey re-prompts on validation failure, matching the
		// never-fatal policy for input errors
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	err := survey.AskOne(&survey.Input{Message: message, Default: defaultValue}, &answer, opts...)
	return answer, err
}

func (SurveyPrompter) Select(message string, options []string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Select{Message: message, Options: options}, &answer)
	return answer, err
}

func (SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	var answer bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: defaultValue}, &answer)
	return answer, err
}
