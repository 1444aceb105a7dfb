package main

import "github.com/masmgr/svnlog-go/cmd"

func main() {
	cmd.Run()
}
