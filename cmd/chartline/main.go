package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/cobalt-pine/chartline/internal/config"
	"github.com/cobalt-pine/chartline/internal/engine"
	"github.com/cobalt-pine/chartline/internal/logging"
	"github.com/cobalt-pine/chartline/internal/output/stdout"
	"github.com/cobalt-pine/chartline/internal/source"

	// Register source implementations.
	_ "github.com/cobalt-pine/chartline/internal/source/file"
)

func main() {
	cpmrn := flag.String("cpmrn", "", "patient case identifier")
	encounter := flag.Int("encounter", 1, "encounter number")
	showInfo := flag.Bool("info", false, "print the patient summary before the timeline")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logging.Init(cfg.Output.Format == "json", logging.ParseLevel(cfg.LogLevel))

	ctor, err := source.Get(cfg.Source.Provider)
	if err != nil {
		log.Fatalf("failed to resolve source: %v", err)
	}
	src := ctor(source.Config{
		Provider: cfg.Source.Provider,
		Path:     cfg.Source.PatientFile,
	})

	ctx := context.Background()
	doc, err := src.Fetch(ctx, *cpmrn, *encounter)
	if err != nil {
		log.Fatalf("failed to fetch patient document: %v", err)
	}
	if doc == nil {
		// Absence is not an error: there is simply nothing to process.
		slog.Info("no patient data", "cpmrn", *cpmrn, "encounter", *encounter)
		return
	}

	eng := engine.New(cfg.Engine.MaxSectionLen)
	out := stdout.New(cfg.Output.Format == "json")
	defer out.Close()

	if *showInfo {
		info := eng.PatientInfo(doc)
		fmt.Printf("Patient: %s\nMRN: %s\nDOB: %s\nAge: %s\nSex: %s\nAdmitted: %s\nDiagnosis: %s\n\n",
			info.Name, info.MRN, info.DOB, info.Age, info.Sex, info.Admission, info.Diagnosis)
	}

	events := eng.Timeline(doc)
	for _, ev := range events {
		if err := out.Write(ctx, ev); err != nil {
			fmt.Fprintf(os.Stderr, "write event: %v\n", err)
			os.Exit(1)
		}
	}
	slog.Info("timeline complete", "cpmrn", *cpmrn, "events", len(events))
}
