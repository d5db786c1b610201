package main

import "nathanbeddoewebdev/cfzone/cmd"

func main() {
	cmd.Execute()
}
