package main

import "github.com/LavenderBridge/attend/cmd"

func main() {
	cmd.Execute()
}
