package main

import "github.com/castware/podcastindex-go/cmd"

func main() {
	cmd.Execute()
}
