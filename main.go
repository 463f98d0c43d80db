package main

import "finance-tracker/cmd"

func main() {
	cmd.Execute()
}
