package main

import "github.com/daniel-kun/hiptest-publisher/cmd"

func main() {
	cmd.Execute()
}
