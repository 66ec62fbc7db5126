package main

import "calculator-api/cli"

func main() {
	cli.Execute()
}
