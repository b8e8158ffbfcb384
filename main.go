package main

import "github.com/frahmantamala/gym-management/cmd"

func main() {
	cmd.Execute()
}
