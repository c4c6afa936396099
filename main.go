package main

import "pomotick/internal/cli"

func main() {
	cli.Execute()
}
