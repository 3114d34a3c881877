package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"addressbook/internal/adapters/render"
	"addressbook/internal/application/commands"
	"addressbook/internal/application/parser"
	"addressbook/internal/ports"
)

var runCmd = &cobra.Command{
	Use:   "run <command line>",
	Short: "Run a command line as typed in the address book",
	Long: `Run one command line in the address book's own syntax.

Examples:
  addressbook run "remark 1 r/Likes coffee"
  addressbook run "edit 2 p/91234567 e/johndoe@example.com"
  addressbook run "find t/friends"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parser.Parse(GetSession(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		return execute(cmd, c)
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current listing without changing it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printListing(cmd, GetSession())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(showCmd)
}

// wordCommand builds a subcommand that hands its arguments to the parser for word
func wordCommand(word, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:   parser.Usage[word],
		Short: short,
		Long:  long,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parser.ParseArgs(GetSession(), word, strings.Join(args, " "))
			if err != nil {
				return err
			}
			return execute(cmd, c)
		},
	}
}

// execute runs c and prints its message, followed by the listing when c changed the view
func execute(cmd *cobra.Command, c commands.Command) error {
	result, err := c.Execute(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), render.NewViewBuilder().Message(result.Message, false).String())

	switch c.Word() {
	case commands.WordList, commands.WordFind, commands.WordUndo, commands.WordRedo, commands.WordSort:
		printListing(cmd, GetSession())
	}
	return nil
}

func printListing(cmd *cobra.Command, m ports.Model) {
	persons := m.FilteredPersons()
	if plain {
		fmt.Fprint(cmd.OutOrStdout(), render.Plain(persons))
		return
	}
	fmt.Fprint(cmd.OutOrStdout(), render.Listing(persons, m.Filter()))
}
