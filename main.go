package main

import (
	"github.com/jjtimmons/overlap/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
