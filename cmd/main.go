package main

import (
	"github.com/clinicdev/clinic-api/cmd/bootstrap"
)

func main() {
	bootstrap.Run()
}
