package util

import (
	"github.com/AlecAivazis/survey/v2"
)

// Confirm prompts the user for a yes/no confirmation
func Confirm(message string, defaultVal bool) (bool, error) {
	var result bool
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultVal,
	}

	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}

	return result, nil
}
