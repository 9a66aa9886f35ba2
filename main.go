package main

import "github.com/AbsaOSS/libvcx/cmd"

func main() {
	cmd.Execute()
}
