// Package main provides the inspect command-line tool that previews a
// dataset and verifies its metadata stamp without modifying anything.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"custclean/internal/csvio"
	"custclean/internal/payload"
	"custclean/internal/report"
	"custclean/internal/table"
	"custclean/pkg/metadata"
)

func main() {
	// Define command-line flags
	input := flag.String("input", "", "CSV dataset or cleaned JSON document to inspect")
	rows := flag.Int("rows", 10, "Number of rows to preview")
	delimiter := flag.String("delimiter", ",", "CSV field delimiter")
	verify := flag.Bool("verify", false, "Verify the metadata stamp next to the file")
	help := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	if *input == "" {
		fmt.Println("❌ Please provide a file with -input")
		printUsage()
		os.Exit(1)
	}

	if utf8.RuneCountInString(*delimiter) != 1 {
		fmt.Printf("❌ -delimiter must be a single character, got %q\n", *delimiter)
		os.Exit(1)
	}

	fmt.Printf("📂 Inspecting: %s\n", *input)

	t, err := loadTable(*input, *delimiter)
	if err != nil {
		fmt.Printf("❌ Failed to load %s: %v\n", *input, err)
		os.Exit(1)
	}

	fmt.Printf("📐 %d rows, %d columns\n", t.Len(), len(t.Names()))

	// Show provenance when a stamp sits next to the file.
	stamp, stampErr := metadata.Load(*input)
	switch {
	case stampErr == nil:
		fmt.Printf("🆔 Run %s from %s at %s\n",
			stamp.RunID, stamp.Source, stamp.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	case !errors.Is(stampErr, metadata.ErrNoStamp):
		fmt.Printf("⚠️  Could not read metadata stamp: %v\n", stampErr)
	}

	if *verify {
		if _, err := metadata.Verify(*input); err != nil {
			fmt.Printf("❌ Stamp verification failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Stamp verified: content matches its recorded hash")
	}

	preview, err := report.Preview(t, *rows)
	if err != nil {
		fmt.Printf("❌ Preview failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n------------------------------------------------")
	fmt.Printf("📊 Preview (first %d rows)\n", *rows)
	fmt.Println("------------------------------------------------")
	fmt.Print(preview)

	sums, err := report.Summarize(t)
	if err != nil {
		fmt.Printf("❌ Summary failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n------------------------------------------------")
	fmt.Println("📊 Column Summary")
	fmt.Println("------------------------------------------------")
	fmt.Print(report.FormatSummaries(sums))
}

// loadTable reads either a CSV file or a cleaned JSON document, keyed off the
// file extension.
func loadTable(path, delimiter string) (*table.Table, error) {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		doc, err := payload.LoadDocument(path)
		if err != nil {
			return nil, err
		}
		return documentTable(doc)
	}

	r, _ := utf8.DecodeRuneInString(delimiter)

	return csvio.Read(path, csvio.Options{Delimiter: r})
}

// documentTable rebuilds a table from a document's records. JSON objects do
// not preserve column order, so columns come out sorted by name.
func documentTable(doc *payload.Document) (*table.Table, error) {
	t := table.New()
	if len(doc.Records) == 0 {
		return t, nil
	}

	names := make([]string, 0, len(doc.Records[0]))
	for name := range doc.Records[0] {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := t.AddColumn(name, documentColumn(doc.Records, name)); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// documentColumn types a column from decoded JSON values: numbers arrive as
// float64, so cleaned int columns show as floats here.
func documentColumn(records []map[string]any, name string) *table.Column {
	kind := table.KindString
	for _, rec := range records {
		switch rec[name].(type) {
		case float64:
			kind = table.KindFloat
		case bool:
			kind = table.KindBool
		case string:
			kind = table.KindString
		default:
			continue
		}
		break
	}

	col := table.NewColumn(kind)
	for _, rec := range records {
		switch v := rec[name].(type) {
		case float64:
			if kind == table.KindFloat {
				col.AppendFloat(v)
			} else {
				col.AppendNull()
			}
		case bool:
			if kind == table.KindBool {
				col.AppendBool(v)
			} else {
				col.AppendNull()
			}
		case string:
			if kind == table.KindString {
				col.AppendString(v)
			} else {
				col.AppendNull()
			}
		default:
			col.AppendNull()
		}
	}

	return col
}

func printUsage() {
	fmt.Println("Usage: ./bin/inspect [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/inspect -input data/raw/customers.csv")
	fmt.Println("  ./bin/inspect -input out/cleaned.csv -verify")
	fmt.Println("  ./bin/inspect -input out/cleaned.json -rows 20")
}
