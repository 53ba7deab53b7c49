package main

import "github.com/seralba/spotifind/cmd"

func main() {
	cmd.Execute()
}
