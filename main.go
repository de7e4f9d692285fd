package main

import "github.com/bobibot/bobibot/cmd"

func main() {
	cmd.Execute()
}
