package main

import (
	"github.com/hellokube/hellokube/pkg/cli"
)

func main() {
	cli.Execute()
}
