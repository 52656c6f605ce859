package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/bgraf/gopro2gpx/config"
	"github.com/spf13/cobra"
)

// authorCmd represents the author command
var authorCmd = &cobra.Command{
	Use:   "author",
	Short: "Set the author stamped into exported GPX files",
	Long: `Set the author stamped into exported GPX files.

Without flags the current values are offered for editing interactively. The
values are stored in the configuration file.`,
	Args: cobra.NoArgs,
	RunE: runAuthor,
}

func init() {
	rootCmd.AddCommand(authorCmd)

	authorCmd.Flags().String("name", "", "Author name")
	authorCmd.Flags().String("link", "", "Author link, e.g. a homepage URL")
	authorCmd.Flags().String("link-text", "", "Text shown for the author link")
}

func runAuthor(cmd *cobra.Command, args []string) error {
	author := config.Author()

	if !anyChanged(cmd, "name", "link", "link-text") {
		questions := []*survey.Question{
			{
				Name:     "name",
				Prompt:   &survey.Input{Message: "Name", Default: author.Name},
				Validate: survey.Required,
			},
			{
				Name:   "link",
				Prompt: &survey.Input{Message: "Link", Default: author.Link},
			},
			{
				Name:   "linktext",
				Prompt: &survey.Input{Message: "Link text", Default: author.LinkText},
			},
		}

		answers := struct {
			Name     string
			Link     string
			LinkText string `survey:"linktext"`
		}{}

		err := survey.Ask(questions, &answers)
		exitOnInterrupt(err)
		if err != nil {
			return err
		}

		author.Name = answers.Name
		author.Link = answers.Link
		author.LinkText = answers.LinkText
	} else {
		if cmd.Flags().Changed("name") {
			author.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("link") {
			author.Link, _ = cmd.Flags().GetString("link")
		}
		if cmd.Flags().Changed("link-text") {
			author.LinkText, _ = cmd.Flags().GetString("link-text")
		}
	}

	fallback, err := defaultConfigPath()
	if err != nil {
		return err
	}

	path, err := config.SaveAuthor(author, fallback)
	if err != nil {
		return err
	}

	fmt.Printf("Author saved to '%s'.\n", path)
	return nil
}

func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}
