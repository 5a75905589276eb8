// Command moviehubctl manages movies, news and twitter posts on a MovieHub server.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
