// Command seriesconv rewrites paint series files in the current format.
// Legacy 8-bit files are widened on the way through.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/echoflaresat/paintmix/seriesfile"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <input series> <output series>\n", os.Args[0])
		os.Exit(1)
	}
	input, output := os.Args[1], os.Args[2]

	if err := convert(input, output); err != nil {
		log.Fatalf("Could not convert %q: %v", input, err)
	}
}

func convert(input, output string) error {
	s, err := seriesfile.Load(input)
	if err != nil {
		return err
	}
	fmt.Printf("-> writing %d colours of %s to %s\n", s.Len(), s.ID(), output)

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := seriesfile.Format(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
