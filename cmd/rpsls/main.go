package main

import "github.com/demodevopss/RockPaperScissorsLizardSpock/internal/cli"

func main() {
	cli.Execute()
}
