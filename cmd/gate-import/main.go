// Command gate-import loads gate entries from a JSON file into the Postgres
// register, in the same shape the upstream register API serves.
package main

import (
	"os"

	"github.com/pkordes/gate-register/internal/app"
)

func main() {
	if err := newRootCmd(app.ImportEntries).Execute(); err != nil {
		os.Exit(1)
	}
}
