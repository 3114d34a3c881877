package cmd

import "addressbook/internal/application/commands"

var clearCmd = wordCommand(commands.WordClear,
	"Remove every person",
	"Remove every person from the address book. Can be undone.")

var undoCmd = wordCommand(commands.WordUndo,
	"Undo the last change",
	"Restore the address book to the state before the last add, edit, remark, delete, sort or clear.")

var redoCmd = wordCommand(commands.WordRedo,
	"Redo the last undone change",
	"Reapply the change most recently reverted by undo.")

func init() {
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(redoCmd)
}
