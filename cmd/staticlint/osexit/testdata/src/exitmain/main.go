package main

import (
	"log"
	"os"
)

func run() error {
	return nil
}

func helper() {
	os.Exit(2)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
	defer helper()
	os.Exit(0) // want "avoid direct os.Exit usage in main function of main package"
}
