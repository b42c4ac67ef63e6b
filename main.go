// Command mojifix repairs Arabic mojibake in source string literals.
package main

import "github.com/mouse-blink/mojifix/cmd"

func main() {
	cmd.Execute()
}
