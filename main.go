package main

import "github.com/tristendillon/nbstub/cmd"

func main() {
	cmd.Execute()
}
