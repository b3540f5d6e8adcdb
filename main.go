package main

import "github.com/user/ytclip-cli/cmd"

func main() {
	cmd.Execute()
}
