// Package input decodes problem files for the rodcut CLI.
//
// Files are YAML; JSON documents are accepted as well since JSON is a
// subset of YAML. Unknown fields are rejected so typos surface early.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rodcut/printqueue"
	"github.com/katalvlaran/rodcut/rodcut"
)

// ErrEmptyDocument is returned for files without a YAML document.
var ErrEmptyDocument = errors.New("input: empty document")

// ErrBadPriceList is returned by ParsePrices for malformed lists.
var ErrBadPriceList = errors.New("input: malformed price list")

// RodProblem is a rod-cutting instance.
type RodProblem struct {
	Length int               `yaml:"length"`
	Prices rodcut.PriceTable `yaml:"prices"`
}

// QueueProblem is a print-queue instance.
type QueueProblem struct {
	Constraints printqueue.Constraints `yaml:"constraints"`
	Jobs        []printqueue.Job       `yaml:"jobs"`
}

// ReadRodProblem decodes a RodProblem from r.
func ReadRodProblem(r io.Reader) (RodProblem, error) {
	var p RodProblem
	if err := decodeStrict(r, &p); err != nil {
		return RodProblem{}, fmt.Errorf("rod problem: %w", err)
	}

	return p, nil
}

// ReadQueueProblem decodes a QueueProblem from r.
func ReadQueueProblem(r io.Reader) (QueueProblem, error) {
	var p QueueProblem
	if err := decodeStrict(r, &p); err != nil {
		return QueueProblem{}, fmt.Errorf("queue problem: %w", err)
	}

	return p, nil
}

// LoadRodProblem reads a RodProblem from the file at path.
func LoadRodProblem(path string) (RodProblem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RodProblem{}, fmt.Errorf("read %s: %w", path, err)
	}

	return ReadRodProblem(bytes.NewReader(data))
}

// LoadQueueProblem reads a QueueProblem from the file at path.
func LoadQueueProblem(path string) (QueueProblem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return QueueProblem{}, fmt.Errorf("read %s: %w", path, err)
	}

	return ReadQueueProblem(bytes.NewReader(data))
}

// ParsePrices parses a comma- or space-separated price list such as
// "2,5,7,8,10". Range checks are left to the solver.
func ParsePrices(s string) (rodcut.PriceTable, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == ';'
	})

	prices := make(rodcut.PriceTable, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d %q", ErrBadPriceList, i+1, f)
		}
		prices = append(prices, v)
	}

	return prices, nil
}

func decodeStrict(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyDocument
		}

		return err
	}

	return nil
}
