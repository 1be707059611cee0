// Package config loads catalogs of named alphabets.
//
// A catalog is a YAML document:
//
//  alphabets:
//    - name: dna
//      symbols: ACGT
//    - name: umbrella
//      symbols: "\U0001F302\u2602\uFE0F"
//      split: graphemes
//
// split is one of runes (default), graphemes or bytes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/multibase/alphabet"
	"github.com/calebcase/multibase/symbol"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("config")

// Entry is a named alphabet.
type Entry struct {
	Name    string `yaml:"name"`
	Symbols string `yaml:"symbols"`
	Split   string `yaml:"split,omitempty"`
}

// Mode returns the split mode of the entry.
func (e Entry) Mode() (symbol.Mode, error) {
	return symbol.ParseMode(e.Split)
}

// Alphabet returns the validated alphabet of the entry.
func (e Entry) Alphabet() (*alphabet.Alphabet, error) {
	mode, err := e.Mode()
	if err != nil {
		return nil, err
	}

	return alphabet.Parse(e.Symbols, mode)
}

// EntryError is returned for a catalog entry whose alphabet is invalid.
type EntryError struct {
	Name string
	Err  error
}

// Error implements error.
func (e *EntryError) Error() string {
	return fmt.Sprintf("alphabet %q: %v", e.Name, e.Err)
}

// Unwrap returns the alphabet error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// Catalog is a set of named alphabets.
type Catalog struct {
	Alphabets []Entry `yaml:"alphabets"`
}

// Load reads the catalog at path.
func Load(path string) (c *Catalog, err error) {
	defer Error.WrapP(&err)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes and validates a catalog. Every entry must have a unique
// name and a valid alphabet.
func Parse(data []byte) (c *Catalog, err error) {
	defer Error.WrapP(&err)

	c = &Catalog{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err = dec.Decode(c)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	names := map[string]bool{}
	for i, e := range c.Alphabets {
		if e.Name == "" {
			return nil, Error.New("alphabet %d: missing name", i)
		}
		if names[e.Name] {
			return nil, Error.New("alphabet %q: defined more than once", e.Name)
		}
		names[e.Name] = true

		_, err = e.Alphabet()
		if err != nil {
			return nil, Error.Wrap(&EntryError{
				Name: e.Name,
				Err:  err,
			})
		}
	}

	return c, nil
}

// Lookup returns the entry with the given name.
func (c *Catalog) Lookup(name string) (e Entry, ok bool) {
	for _, e := range c.Alphabets {
		if e.Name == name {
			return e, true
		}
	}

	return Entry{}, false
}
