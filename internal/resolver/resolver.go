// Package resolver demonstrates the contract engine on a company-name
// resolution task: finding known companies in free text using a database of
// company records. The resolution itself is plain substring matching;
// LLM-backed entity extraction stays an intentional stub.
package resolver

import (
	"fmt"
	"os"
	"strings"

	"github.com/ariel-frischer/gocontract/contract"
	"gopkg.in/yaml.v3"
)

// Company is one database record.
type Company struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// ResolveArgs bundles the arguments of a resolution call.
type ResolveArgs struct {
	Text     string
	Database []Company
}

// SampleText is the demo input.
const SampleText = "Apple Inc. and Microsoft Corporation are major tech companies."

// SampleDatabase returns the built-in demo company database.
func SampleDatabase() []Company {
	return []Company{
		{ID: 1, Name: "Apple Inc.", URL: "https://apple.com"},
		{ID: 2, Name: "Microsoft Corporation", URL: "https://microsoft.com"},
		{ID: 3, Name: "Google LLC", URL: "https://google.com"},
	}
}

// LoadDatabase reads a company database from a YAML file.
func LoadDatabase(path string) ([]Company, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading company database: %w", err)
	}
	var db []Company
	if err := yaml.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("parsing company database: %w", err)
	}
	return db, nil
}

// ResolveCompanyNames resolves company names found in text against the
// database, preserving database order and record structure.
var ResolveCompanyNames = contract.New("resolve_company_names", resolve).
	WithSpecification("Resolves company names in text using database lookup").
	WithPreDescription("Text must be a non-empty string and database must be a list of valid company records with id, name, and url fields").
	WithPostDescription("Returns a list of company records that were found in the text, preserving database structure with id, name, and url").
	WithPrecondition(contract.Pred(validResolveArgs)).
	WithPostcondition(contract.ResultPred(resolvedSubsetOfDatabase))

// ExtractEntities would use an LLM to pull arbitrary entity mentions out of
// text. The body is a logical hole: automated tooling can detect the marker
// and fill it in later.
var ExtractEntities = contract.New("extract_entities", func(text string) ([]string, error) {
	return nil, contract.ImplementThis("LLM-backed entity extraction not yet implemented")
}).
	WithSpecification("Extracts entity mentions from text using an LLM").
	WithPreDescription("Text must be a non-empty string").
	WithDeclaredErrors(contract.ImplementThis("entity extraction stub")).
	WithPrecondition(contract.Pred(func(text string) bool {
		return strings.TrimSpace(text) != ""
	}))

// resolve matches database records whose name occurs in the text,
// case-insensitively.
func resolve(args ResolveArgs) ([]Company, error) {
	text := strings.ToLower(args.Text)
	var found []Company
	for _, c := range args.Database {
		if strings.Contains(text, strings.ToLower(c.Name)) {
			found = append(found, c)
		}
	}
	return found, nil
}

// validResolveArgs is the precondition: non-empty text and well-formed
// database records.
func validResolveArgs(args ResolveArgs) bool {
	if strings.TrimSpace(args.Text) == "" {
		return false
	}
	for _, c := range args.Database {
		if c.ID <= 0 || c.Name == "" || c.URL == "" {
			return false
		}
	}
	return true
}

// resolvedSubsetOfDatabase is the postcondition: every resolved record came
// from the database unchanged.
func resolvedSubsetOfDatabase(result []Company, args ResolveArgs) bool {
	for _, r := range result {
		if !containsCompany(args.Database, r) {
			return false
		}
	}
	return true
}

func containsCompany(db []Company, c Company) bool {
	for _, d := range db {
		if d == c {
			return true
		}
	}
	return false
}
