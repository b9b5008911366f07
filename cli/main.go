package main

import "github.com/harrybrwn/go-staticmap/cmd"

func main() {
	cmd.Execute()
}
