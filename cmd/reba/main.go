package main

import "github.com/suykerbuyk/reba/internal/cli"

func main() {
	cli.Execute()
}
