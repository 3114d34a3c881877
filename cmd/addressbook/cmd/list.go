package cmd

import "addressbook/internal/application/commands"

var listCmd = wordCommand(commands.WordList,
	"List every person",
	"List every person and reset any filter set by find.")

var findCmd = wordCommand(commands.WordFind,
	"Filter the listing by name or tag",
	`Show persons whose name contains any keyword as a whole word, ignoring case,
or persons carrying any of the given tags.

Examples:
  addressbook find alex david
  addressbook find t/friends t/colleagues`)

var sortCmd = wordCommand(commands.WordSort,
	"Sort the address book",
	`Sort every person by name (default), phone, email or address.

Examples:
  addressbook sort
  addressbook sort email`)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(sortCmd)
}
