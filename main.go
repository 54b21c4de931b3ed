package main

import (
	"github.com/lipingzengGitHub/ChIP-seq/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
