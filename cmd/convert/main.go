package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"energy-dashboard/internal/data"
)

// convert normalizes a raw SMARD generation workbook (one sheet per year,
// quarter-hour rows) into the annual CSV the dashboard loads at startup.
func main() {
	inPath := flag.String("in", "", "Path to SMARD .xlsx workbook")
	outPath := flag.String("out", "generation_annual.csv", "Output CSV path")
	flag.Parse()

	if *inPath == "" {
		fmt.Println("--in is required")
		os.Exit(2)
	}

	records, err := data.LoadGenerationXLSX(*inPath)
	if err != nil {
		panic(err)
	}
	if len(records) == 0 {
		panic("no yearly sheets found in workbook")
	}

	if dir := filepath.Dir(*outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			panic(err)
		}
	}
	f, err := os.Create(*outPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	if err := data.WriteGenerationCSV(f, records); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %d annual rows (%d-%d) to %s\n",
		len(records), records[0].Year, records[len(records)-1].Year, *outPath)
}
