package main

import "github.com/mabhi256/hexdiag/cmd"

func main() {
	cmd.Execute()
}
