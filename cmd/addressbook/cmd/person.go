package cmd

import "addressbook/internal/application/commands"

var addCmd = wordCommand(commands.WordAdd,
	"Add a person",
	`Add a person to the end of the address book.

Examples:
  addressbook add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2 t/friends
  addressbook add n/Betsy Crowe p/1234567 e/betsy@example.com a/Newgate Prison r/Met at work`)

var editCmd = wordCommand(commands.WordEdit,
	"Edit fields of a listed person",
	`Edit the person at INDEX in the current listing. Only the fields given change.
An empty t/ removes all tags.

Examples:
  addressbook edit 1 p/91234567 e/johndoe@example.com
  addressbook edit 2 n/Betsy Crower t/`)

var remarkCmd = wordCommand(commands.WordRemark,
	"Set or clear the remark of a listed person",
	`Set the remark of the person at INDEX in the current listing.
An empty r/ clears the remark.

Examples:
  addressbook remark 1 r/Likes to swim.
  addressbook remark 1 r/`)

var deleteCmd = wordCommand(commands.WordDelete,
	"Delete a listed person",
	`Delete the person at INDEX in the current listing.

Examples:
  addressbook delete 2
  addressbook find Betsy && addressbook delete 1`)

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(remarkCmd)
	rootCmd.AddCommand(deleteCmd)
}
