package main

import "hbsreport/cmd"

func main() {
	cmd.Execute()
}
