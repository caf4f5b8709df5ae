package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/s102/pkg/s102"
)

func main() {
	// Index every S-102 product below the charts directory
	idx, err := s102.BuildIndexFromDir("charts")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Indexed products: %d\n", idx.Len())

	// Viewport query (Boston Harbor area)
	viewport := s102.Bounds{
		MinX: -71.1, MaxX: -71.0,
		MinY: 42.3, MaxY: 42.4,
	}

	for _, entry := range idx.Query(viewport) {
		fmt.Printf("  %s: %s (issued %s)\n",
			entry.Path,
			entry.GeographicIdentifier,
			entry.IssueDate)
	}
}
