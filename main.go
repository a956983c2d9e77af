package main

import "github.com/s22625/ghdash/internal/cli"

func main() {
	cli.Execute()
}
