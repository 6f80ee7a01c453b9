package main

import (
	"github.com/tutils/untwist/cmd"
)

func main() {
	cmd.Execute()
}
