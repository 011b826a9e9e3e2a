package main

import "github.com/iw2rmb/lineed/cmd/lineed/cmd"

func main() {
	cmd.Execute()
}
