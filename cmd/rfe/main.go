package main

import (
	"github.com/mrityunjaygr8/rfe/pkg/cmd"
)

func main() {
	cmd.Execute()
}
