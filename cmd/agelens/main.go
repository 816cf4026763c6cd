package main

import "github.com/nvidales/agelens/internal/cli"

func main() {
	cli.Execute()
}
