package main

import "github.com/KaramelBytes/imaris-cli/cmd"

func main() {
	cmd.Execute()
}
