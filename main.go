package main

import "cardworth/cmd"

func main() {
	cmd.Execute()
}
