package main

import "picarc/internal/cli"

func main() {
	cli.Execute()
}
