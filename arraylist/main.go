// Package main is the entry point of the arraylist command.
package main

import "github.com/sarchlab/arraylist/arraylist/cmd"

func main() {
	cmd.Execute()
}
