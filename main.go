/*
Copyright © 2025 Shelf HQ <oss@shelfhq.dev>
*/
package main

import "github.com/shelfhq/shelfmark/cmd"

func main() {
	cmd.Execute()
}
