package main

import "github.com/Johannes-Berggren/goblin-prune/cmd"

func main() {
	cmd.Execute()
}
