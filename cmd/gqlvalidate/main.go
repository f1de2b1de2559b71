// Command gqlvalidate runs the validator over a JSON-encoded executable
// document and type-system document, as described by a YAML config
// file. The lexer/parser that would turn raw SDL/query text into these
// ASTs is an external collaborator (spec §1 "Out of scope"), so this
// CLI consumes already-parsed JSON rather than source text.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/google/uuid"
	"github.com/jensneuse/abstractlogger"

	graphql "github.com/shyptr/graphql"
	"github.com/shyptr/graphql/ast"
	"github.com/shyptr/graphql/document"
	"github.com/shyptr/graphql/schema"
)

func main() {
	configPath := flag.String("config", "gqlvalidate.yaml", "path to the run config")
	debug := flag.Bool("debug", false, "dump schema and document context summaries to stderr before validating")
	flag.Parse()

	if err := run(*configPath, *debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, debug bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	fmt.Fprintf(os.Stderr, "[%s] run_id=%s loading schema=%s document=%s\n", cfg.LogLevel, runID, cfg.SchemaPath, cfg.DocumentPath)

	schemaDoc, err := readTypeSystemDocument(cfg.SchemaPath)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}
	executableDoc, err := readExecutableDocument(cfg.DocumentPath)
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}

	if debug {
		schemaCtx, _ := schema.NewContext(schemaDoc, schema.WithLogger(abstractlogger.Noop{}))
		docCtx := document.NewContext(executableDoc, document.WithLogger(abstractlogger.Noop{}))
		fmt.Fprintln(os.Stderr, schemaCtx.Dump())
		fmt.Fprintln(os.Stderr, docCtx.Dump())
	}

	_, errs := graphql.Validate(executableDoc, schemaDoc)
	if errs.HasErrors() {
		fmt.Fprintf(os.Stderr, "[%s] run_id=%s validation failed: %d error(s)\n", cfg.LogLevel, runID, len(errs))
		return json.NewEncoder(os.Stdout).Encode(errs)
	}

	fmt.Fprintf(os.Stderr, "[%s] run_id=%s validation succeeded\n", cfg.LogLevel, runID)
	return json.NewEncoder(os.Stdout).Encode(executableDoc)
}

func readTypeSystemDocument(path string) (*ast.TypeSystemDocument, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc ast.TypeSystemDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func readExecutableDocument(path string) (*ast.ExecutableDocument, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc ast.ExecutableDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
