// recgen generates Go record types from record declaration files.
//
// Usage:
//
//	recgen -in records.rec [-out records_gen.go] [-pkg models]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/CaliLuke/go-records/recgen"
)

const version = "0.1.0"

func main() {
	inFile := flag.String("in", "", "Path to record declaration file (required)")
	outFile := flag.String("out", "", "Output Go file (default: stdout)")
	pkg := flag.String("pkg", "models", "Package name for generated code")
	module := flag.String("records", "", "Import path of the records package (default: github.com/CaliLuke/go-records/records)")
	acronyms := flag.Bool("acronyms", true, "Apply Go naming conventions for acronyms (ID, URL, etc.)")
	constructors := flag.Bool("constructors", true, "Generate New<Record> constructors")
	withers := flag.Bool("withers", true, "Generate With<Component> methods")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("recgen %s\n", version)
		os.Exit(0)
	}

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "error: -in flag is required")
		flag.Usage()
		os.Exit(1)
	}

	decls, err := recgen.ParseFile(*inFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var w *os.File
	if *outFile != "" {
		w, err = os.Create(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error creating output: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = w.Close() }()
	} else {
		w = os.Stdout
	}

	cfg := recgen.DefaultConfig()
	cfg.PackageName = *pkg
	cfg.UseAcronyms = *acronyms
	cfg.Constructors = *constructors
	cfg.Withers = *withers
	cfg.Source = *inFile
	if *module != "" {
		cfg.ModulePath = *module
	}
	if err := recgen.Render(w, decls, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error rendering: %v\n", err)
		os.Exit(1)
	}
}
