package main

import "github.com/heathj/minidom/cmd"

func main() {
	cmd.Execute()
}
