// Package main provides the seed command-line tool that writes a starter
// configuration and a small raw dataset, so a fresh checkout can run the
// cleaner end to end immediately.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"custclean/internal/config"
	"custclean/internal/csvio"
	"custclean/internal/table"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
)

func logInfo(msg string) {
	fmt.Printf("%s[SEED]%s %s\n", colorGreen, colorReset, msg)
}

func logWarn(msg string) {
	fmt.Printf("%s[SEED]%s %s\n", colorYellow, colorReset, msg)
}

func logError(msg string) {
	fmt.Printf("%s[SEED]%s %s\n", colorRed, colorReset, msg)
}

// sampleColumns holds the raw sample dataset column by column. The values
// cover the quirks the pipeline handles: missing cells, percent suffixes,
// state abbreviations, inconsistent gender, education and vehicle labels,
// and the slash-delimited complaints format. Empty strings become empty
// cells in the written file.
var sampleColumns = []struct {
	name   string
	values []string
}{
	{"Customer", []string{
		"RB50392", "QZ44356", "AI49188", "WW63253", "GA49547", "OC83172", "", "XZ87318"}},
	{"ST", []string{
		"Washington", "Arizona", "Nevada", "California", "WA", "Cali", "AZ", "Oregon"}},
	{"GENDER", []string{
		"", "F", "Femal", "M", "Male", "female", "F", "M"}},
	{"Education", []string{
		"Master", "Bachelor", "Bachelors", "High School or Below", "College",
		"Bachelor", "Doctor", "College"}},
	{"Customer Lifetime Value", []string{
		"", "697953.59%", "1288743.17%", "764586.18%", "536307.65%",
		"825629.78%", "538089.86%", "721610.03%"}},
	{"Income", []string{
		"0", "0", "48767", "0", "36357", "62902", "55350", ""}},
	{"Monthly Premium Auto", []string{
		"1000", "94", "108", "106", "68", "69", "67", "101"}},
	{"Number of Open Complaints", []string{
		"1/0/00", "1/0/00", "1/0/00", "1/0/00", "", "1/2/00", "1/0/00", "1/3/00"}},
	{"Policy Type", []string{
		"Personal Auto", "Personal Auto", "Personal Auto", "Corporate Auto",
		"Personal Auto", "Personal Auto", "Corporate Auto", "Special Auto"}},
	{"Vehicle Class", []string{
		"Four-Door Car", "Four-Door Car", "Two-Door Car", "SUV", "Luxury SUV",
		"Sports Car", "Four-Door Car", "Luxury Car"}},
	{"Total Claim Amount", []string{
		"2.704934", "1131.464935", "566.472247", "529.881344", "17.269323",
		"159.383042", "321.6", "363.02968"}},
}

func main() {
	dir := flag.String("dir", ".", "Directory to seed")
	force := flag.Bool("force", false, "Overwrite existing files")
	flag.Parse()

	dataPath := filepath.Join(*dir, "data", "raw", "customers.csv")
	configPath := filepath.Join(*dir, "configs", "cleaner.yaml")
	outputPath := filepath.Join(*dir, "out", "cleaned.csv")

	if !*force {
		for _, path := range []string{dataPath, configPath} {
			if _, err := os.Stat(path); err == nil {
				logError(fmt.Sprintf("%s already exists, re-run with -force to overwrite", path))
				os.Exit(1)
			}
		}
	} else {
		logWarn("Overwriting existing files (-force)")
	}

	logInfo(fmt.Sprintf("Writing sample dataset to %s", dataPath))
	if err := writeSampleData(dataPath); err != nil {
		logError(fmt.Sprintf("Failed to write sample dataset: %v", err))
		os.Exit(1)
	}

	logInfo(fmt.Sprintf("Writing starter config to %s", configPath))
	if err := writeStarterConfig(configPath, dataPath, outputPath); err != nil {
		logError(fmt.Sprintf("Failed to write starter config: %v", err))
		os.Exit(1)
	}

	logInfo("Seeding complete!")
	logInfo(fmt.Sprintf("Try: ./bin/cleaner -config %s", configPath))
}

func writeSampleData(path string) error {
	t := table.New()
	for _, c := range sampleColumns {
		col := table.NewColumn(table.KindString)
		for _, v := range c.values {
			if v == "" {
				col.AppendNull()
			} else {
				col.AppendString(v)
			}
		}
		if err := t.AddColumn(c.name, col); err != nil {
			return err
		}
	}

	return csvio.Write(t, path, csvio.Options{})
}

func writeStarterConfig(path, inputPath, outputPath string) error {
	cfg := config.Default()
	cfg.Cleaner.Input.Path = inputPath
	cfg.Cleaner.Output.Path = outputPath

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	return cfg.SaveConfig(path)
}
