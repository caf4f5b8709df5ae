package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/s102/pkg/s102"
)

func main() {
	// A small 3x3 depth grid in metres
	depth := [][]float32{
		{12.4, 12.1, 11.8},
		{12.9, 12.5, 12.0},
		{13.3, 12.8, 12.2},
	}

	md := s102.GridMetadata{
		Origin:               [2]float64{-70.95, 42.35},
		Resolution:           [2]float64{0.0001, 0.0001},
		HorizontalDatumValue: 4326,
		GeographicIdentifier: "Boston Harbor",
		IssueDate:            "2026-08-25",
	}

	f, err := s102.FromArraysWithMetadata(depth, nil, md, s102.DefaultGridOptions())
	if err != nil {
		log.Fatal(err)
	}

	report, err := f.WriteFile("surface.h5")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Groups: %d\n", report.Groups)
	fmt.Printf("Datasets: %d\n", report.Datasets)
	fmt.Printf("Unpersisted group attributes: %d\n", len(report.PendingGroupAttrs))
}
