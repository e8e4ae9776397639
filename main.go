package main

import "github.com/shakatoday/helm/cmd"

func main() {
	cmd.Execute()
}
