package main

import (
	"log"

	"github.com/hellokube/hellokube/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
