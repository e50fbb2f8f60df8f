package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

type curr struct {
	Code string
	Name string
}

type locale struct {
	Tag    string
	Code   string
	Symbol string
}

type altSymbol struct {
	Code        string
	Symbol      string
	Description string
}

type tables struct {
	Currencies []curr
	Locales    []locale
	AltSymbols []altSymbol
}

func main() {
	dir := filepath.Join("scripts", "currency")

	// Read the reference data
	currData, err := readCsvFile(filepath.Join(dir, "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading currency CSV file: %v", err))
	}
	localeData, err := readCsvFile(filepath.Join(dir, "locale_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading locale CSV file: %v", err))
	}
	altData, err := readCsvFile(filepath.Join(dir, "altsymbol_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading alternate symbol CSV file: %v", err))
	}

	// Convert and validate the records
	t := tables{
		Currencies: convertDataToCurrencies(currData),
		Locales:    convertDataToLocales(localeData),
		AltSymbols: convertDataToAltSymbols(altData),
	}
	if err := validate(t); err != nil {
		panic(fmt.Errorf("error validating data: %v", err))
	}

	// Generate Go code from the tables using templates
	for _, out := range []string{"currency_data", "registry_data"} {
		code, err := generateGoCode(filepath.Join(dir, out+".tmpl"), t)
		if err != nil {
			panic(fmt.Errorf("error generating Go code: %v", err))
		}
		err = writeToFile(out+".go", code)
		if err != nil {
			panic(fmt.Errorf("error writing to file: %v", err))
		}
	}
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records
	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

func convertDataToCurrencies(data [][]string) []curr {
	// Unknown currency goes first so that it becomes the zero value
	less := func(i, j int) bool {
		a := data[i][0]
		b := data[j][0]
		switch {
		case a == "XXX":
			return true
		case b == "XXX":
			return false
		}
		return a < b
	}
	sort.Slice(data, less)

	currs := []curr{}
	for _, rec := range data {
		currs = append(currs, curr{Code: rec[0], Name: rec[1]})
	}
	return currs
}

// convertDataToLocales sorts locales by tag.
// This order is the enumeration order of the registry after the priority locales.
func convertDataToLocales(data [][]string) []locale {
	sort.SliceStable(data, func(i, j int) bool { return data[i][0] < data[j][0] })
	locs := []locale{}
	for _, rec := range data {
		locs = append(locs, locale{Tag: rec[0], Code: rec[1], Symbol: rec[2]})
	}
	return locs
}

// convertDataToAltSymbols keeps the order of the file.
func convertDataToAltSymbols(data [][]string) []altSymbol {
	alts := []altSymbol{}
	for _, rec := range data {
		alts = append(alts, altSymbol{Code: rec[0], Symbol: rec[1], Description: rec[2]})
	}
	return alts
}

func validate(t tables) error {
	known := map[string]bool{}
	for _, c := range t.Currencies {
		known[c.Code] = true
	}
	for _, l := range t.Locales {
		tag, err := language.Parse(l.Tag)
		if err != nil {
			return fmt.Errorf("locale %q: %w", l.Tag, err)
		}
		if _, conf := tag.Region(); conf != language.Exact {
			return fmt.Errorf("locale %q: no territory", l.Tag)
		}
		// Locale currencies are in circulation, so CLDR must know them.
		if _, err := currency.ParseISO(l.Code); err != nil {
			return fmt.Errorf("locale %q: currency %q: %w", l.Tag, l.Code, err)
		}
		if !known[l.Code] {
			return fmt.Errorf("locale %q: currency %q is missing from currency data", l.Tag, l.Code)
		}
		if strings.TrimSpace(l.Symbol) == "" {
			return fmt.Errorf("locale %q: empty symbol", l.Tag)
		}
	}
	for _, a := range t.AltSymbols {
		if !known[a.Code] {
			return fmt.Errorf("symbol %q: currency %q is missing from currency data", a.Symbol, a.Code)
		}
	}
	return nil
}

func generateGoCode(filename string, t tables) ([]byte, error) {
	// Create a new template object from the template file
	fmap := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, t)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	err = writer.Flush()
	if err != nil {
		return err
	}
	return nil
}
