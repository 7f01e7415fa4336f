package main

import "github.com/prdeck/prdeck/cmd"

func main() {
	cmd.Execute()
}
