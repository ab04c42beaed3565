package main

import (
	"github.com/battlesnakeio/torus/cmd/torus/commands"
)

func main() {
	commands.Execute()
}
