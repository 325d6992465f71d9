// Command rowcheck validates row-count comparison expressions against
// a database and exits with the accumulated check status.
package main

import (
	"os"

	"github.com/leapstack-labs/rowcheck/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
