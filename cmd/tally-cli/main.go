package main

import "tally/cmd/tally-cli/cmd"

func main() {
	cmd.Execute()
}
