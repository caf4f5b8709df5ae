package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/s102/pkg/s102"
)

func main() {
	depth := [][]float32{
		{5.2, 5.4},
		{5.1, 5.3},
	}

	f, err := s102.FromArrays(depth, nil, s102.DefaultGridOptions())
	if err != nil {
		log.Fatal(err)
	}

	// Root metadata accepts strings, numbers, enum names, and time values;
	// each is coerced to the declared attribute type.
	root := f.Root().Attrs()
	settings := map[string]interface{}{
		"verticalDatum":        "MLLW", // written as its numeric code, read back long-form
		"issueDate":            "2026-08-25",
		"geographicIdentifier": "Example Sound",
		"westBoundLongitude":   -71.05,
		"eastBoundLongitude":   -71.04,
		"southBoundLatitude":   42.35,
		"northBoundLatitude":   42.36,
	}
	for key, val := range settings {
		if err := root.Set(key, val); err != nil {
			log.Fatal(err)
		}
	}

	if v, ok := root.Get("verticalDatum"); ok {
		fmt.Printf("verticalDatum: %v\n", v) // meanLowerLowWater
	}
	fmt.Printf("issueDate: %s\n", root.GetString("issueDate"))

	if _, err := f.WriteFile("surface.h5"); err != nil {
		log.Fatal(err)
	}
}
