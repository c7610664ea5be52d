package main

import "github.com/viant/datetime/internal/cli"

func main() {
	cli.Execute()
}
