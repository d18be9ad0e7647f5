// Package netio reads and writes the three on-disk document kinds of the
// toolkit: transitions, functions, and truth tables. Documents are YAML by
// default, with JSON accepted for files carrying a .json extension. Each
// document holds one top-level named binding.
package netio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/boolnet/internal/compiler"
	"github.com/aretw0/boolnet/pkg/domain"
)

// Kind identifies a document by its top-level binding.
type Kind string

const (
	KindTransitions Kind = "transitions"
	KindFunctions   Kind = "functions"
	KindTruthTable  Kind = "truth_table"
)

// TransitionsDoc is the on-disk shape of a transitions file.
type TransitionsDoc struct {
	Transitions map[string][]string `yaml:"transitions" json:"transitions"`
}

// FunctionsDoc is the on-disk shape of a functions file.
type FunctionsDoc struct {
	Functions map[string]string `yaml:"functions" json:"functions"`
}

// TruthTableDoc is the on-disk shape of a truth table file.
type TruthTableDoc struct {
	TruthTable map[string]map[string]string `yaml:"truth_table" json:"truth_table"`
}

// DetectKind inspects a document's top-level keys without fully decoding it.
func DetectKind(path string) (Kind, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	var top map[string]yaml.Node
	if err := unmarshal(path, data, &top); err != nil {
		return "", err
	}
	for _, kind := range []Kind{KindTransitions, KindFunctions, KindTruthTable} {
		if _, ok := top[string(kind)]; ok {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %s has none of the known top-level bindings", domain.ErrMalformedInput, path)
}

// LoadTransitions reads and validates a transitions document.
func LoadTransitions(path string) (domain.TransitionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transitions file: %w", err)
	}
	var doc TransitionsDoc
	if err := unmarshal(path, data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Transitions) == 0 {
		return nil, fmt.Errorf("%w: %s has no transitions binding", domain.ErrMalformedInput, path)
	}

	ts := make(domain.TransitionSet, len(doc.Transitions))
	for src, targets := range doc.Transitions {
		s := domain.State(src)
		for _, dst := range targets {
			ts[s] = append(ts[s], domain.State(dst))
		}
		if len(targets) == 0 {
			ts[s] = nil
		}
	}
	if err := ts.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ts, nil
}

// SaveTransitions writes a transitions document.
func SaveTransitions(path string, ts domain.TransitionSet) error {
	return write(path, transitionsDoc(ts))
}

// EncodeTransitions renders a transitions document as YAML.
func EncodeTransitions(ts domain.TransitionSet) ([]byte, error) {
	return yaml.Marshal(transitionsDoc(ts))
}

func transitionsDoc(ts domain.TransitionSet) TransitionsDoc {
	doc := TransitionsDoc{Transitions: make(map[string][]string, len(ts))}
	for _, src := range ts.States() {
		targets := make([]string, 0, len(ts[src]))
		for _, dst := range ts[src] {
			targets = append(targets, string(dst))
		}
		sort.Strings(targets)
		doc.Transitions[string(src)] = targets
	}
	return doc
}

// LoadFunctions reads a functions document and compiles its expressions.
func LoadFunctions(path string) (domain.FunctionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read functions file: %w", err)
	}
	var doc FunctionsDoc
	if err := unmarshal(path, data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Functions) == 0 {
		return nil, fmt.Errorf("%w: %s has no functions binding", domain.ErrMalformedInput, path)
	}
	fs, err := compiler.NewParser().ParseSet(doc.Functions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fs, nil
}

// SaveFunctions writes a functions document with deterministic rendering.
func SaveFunctions(path string, fs domain.FunctionSet) error {
	return write(path, functionsDoc(fs))
}

// EncodeFunctions renders a functions document as YAML.
func EncodeFunctions(fs domain.FunctionSet) ([]byte, error) {
	return yaml.Marshal(functionsDoc(fs))
}

func functionsDoc(fs domain.FunctionSet) FunctionsDoc {
	doc := FunctionsDoc{Functions: make(map[string]string, len(fs))}
	for name, f := range fs {
		doc.Functions[name] = f.String()
	}
	return doc
}

// LoadTruthTable reads and validates a truth table document.
func LoadTruthTable(path string) (domain.TruthTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read truth table file: %w", err)
	}
	var doc TruthTableDoc
	if err := unmarshal(path, data, &doc); err != nil {
		return nil, err
	}
	if len(doc.TruthTable) == 0 {
		return nil, fmt.Errorf("%w: %s has no truth_table binding", domain.ErrMalformedInput, path)
	}

	tt := make(domain.TruthTable, len(doc.TruthTable))
	for state, row := range doc.TruthTable {
		entry := make(map[string]domain.State, len(row))
		for name, next := range row {
			entry[name] = domain.State(next)
		}
		tt[domain.State(state)] = entry
	}
	if err := tt.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tt, nil
}

// SaveTruthTable writes a truth table document.
func SaveTruthTable(path string, tt domain.TruthTable) error {
	return write(path, truthTableDoc(tt))
}

// EncodeTruthTable renders a truth table document as YAML.
func EncodeTruthTable(tt domain.TruthTable) ([]byte, error) {
	return yaml.Marshal(truthTableDoc(tt))
}

func truthTableDoc(tt domain.TruthTable) TruthTableDoc {
	doc := TruthTableDoc{TruthTable: make(map[string]map[string]string, len(tt))}
	for state, row := range tt {
		entry := make(map[string]string, len(row))
		for name, next := range row {
			entry[name] = string(next)
		}
		doc.TruthTable[string(state)] = entry
	}
	return doc
}

func unmarshal(path string, data []byte, out any) error {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: failed to parse %s: %v", domain.ErrMalformedInput, path, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: failed to parse %s: %v", domain.ErrMalformedInput, path, err)
	}
	return nil
}

func write(path string, doc any) error {
	var (
		data []byte
		err  error
	)
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

