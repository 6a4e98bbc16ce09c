package main

import "github.com/uselessgoddess/suns/cmd"

func main() {
	cmd.Execute()
}
