package main

import "github.com/svnhec/qoda-sub003/cmd/worker/cmd"

func main() {
	cmd.Execute()
}
