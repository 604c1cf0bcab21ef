package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"textreports/util"
)

// Runner executes one program pipeline against a chosen input file.
type Runner func(path string) error

// Clean up the survey response to remove the bullet point
func formatCliResponse(response string) string {
	return strings.Replace(response, "○ ", "", -1)
}

// SelectInputFile prompts with the regular files of the current directory.
func SelectInputFile() (string, error) {
	files, err := util.ListInputFiles(".")
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no files found in the current directory")
	}

	options := make([]string, 0, len(files))
	for _, f := range files {
		options = append(options, "○ "+f)
	}

	prompt := &survey.Select{
		Message: "Select an input file:",
		Options: options,
	}

	var selected string
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}

	return formatCliResponse(selected), nil
}

// Interactive keeps prompting for input files until the user declines another
// run. A failed run is reported but does not end the session.
func Interactive(run Runner) error {
	for {
		path, err := SelectInputFile()
		if err != nil {
			return err
		}
		fmt.Printf("Selected file: %s\n", path)

		if err := run(path); err != nil {
			fmt.Println(util.TerminalRed + "Error: " + err.Error() + util.TerminalReset)
		}

		again := false
		confirm := &survey.Confirm{
			Message: "Process another file?",
		}
		if err := survey.AskOne(confirm, &again); err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}
