package main

import "github.com/keshon/gvt/internal/cli"

func main() {
	cli.Execute()
}
