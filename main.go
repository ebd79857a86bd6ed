package main

import "github.com/KaramelBytes/propmap-cli/cmd"

func main() {
	cmd.Execute()
}
