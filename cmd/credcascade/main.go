// Command credcascade resolves credentials through a cascade of
// git-compatible credential helpers.
package main

import (
	"os"

	"github.com/custodia-labs/credcascade/internal/adapters/driving/cli"
)

func main() {
	cli.SetAppFactory(newApp)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
