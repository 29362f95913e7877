package main

import "github.com/roman-ra/iniload/cmd"

func main() {
	cmd.Execute()
}
