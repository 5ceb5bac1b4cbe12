package main

import "vodkaflix/cmd"

func main() {
	cmd.Execute()
}
