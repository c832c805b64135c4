package main

import "github.com/jomsey/roof-calc/cmd"

func main() {
	cmd.Execute()
}
