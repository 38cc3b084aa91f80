// Command rsvpctl drives the wedding RSVP API from a terminal, as a guest or
// as an admin.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	cmd, err := newRootCmd(os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
