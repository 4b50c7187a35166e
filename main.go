package main

import "rawgraph/internal/cli"

func main() {
	cli.Execute()
}
