package main

import "github.com/user/supacheck/cmd"

func main() {
	cmd.Execute()
}
