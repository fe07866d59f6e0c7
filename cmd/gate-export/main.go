// Command gate-export writes the gate register as a CSV file, for printing
// at the gate or handing to security staff without the web UI.
package main

import (
	"os"
	"time"

	"github.com/pkordes/gate-register/internal/app"
)

func main() {
	if err := newRootCmd(app.OpenEntrySource, time.Now).Execute(); err != nil {
		os.Exit(1)
	}
}
