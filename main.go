package main

import "github.com/kozaktomas/photo-print/cmd"

func main() {
	cmd.Execute()
}
