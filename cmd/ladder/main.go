package main

import "github.com/paddleclub/ladder/internal/cli"

func main() {
	cli.Execute()
}
