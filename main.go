package main

import "slowpoke/cmd"

func main() {
	cmd.Execute()
}
