// Command pdfclient runs the PDF upload and analysis workflow from the terminal.
//
// Usage:
//
//	pdfclient check
//	pdfclient run <file.pdf>
//	pdfclient analyze <pdf-id>
//	pdfclient results <pdf-id>
//	pdfclient export [-format json|csv] [-o path] <pdf-id>
package main

import (
	"log"
	"os"

	"pdf-analyzer-client/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: .env file could not be loaded: %v", err)
	}

	cli := newCLI(config.NewContainer(), os.Stdout, os.Stderr)
	os.Exit(cli.run(os.Args[1:]))
}
