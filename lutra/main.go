package main

import "github.com/sarchlab/lutra/lutra/cmd"

func main() {
	cmd.Execute()
}
