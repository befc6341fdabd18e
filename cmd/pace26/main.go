package main

import "github.com/manpen/pace26io/cmd/pace26/cmd"

func main() {
	cmd.Execute()
}
