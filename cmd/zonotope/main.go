package main

import "github.com/akmonengine/zonotope/cmd/zonotope/cmd"

func main() {
	cmd.Execute()
}
