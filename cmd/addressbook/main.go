package main

import "addressbook/cmd/addressbook/cmd"

func main() {
	cmd.Execute()
}
