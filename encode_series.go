package cagr

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/indexlab/cagr/date"
)

// This file contains code to persist a price series as JSONL, one
// observation per line, in a way that is human-readable and git-friendly.

// jobservation is the object read from or written to a series file.
type jobservation struct {
	On    date.Date `json:"on"`
	Price float64   `json:"price"`
}

// DecodeSeries reads a series from a JSONL stream. filename is for error
// messages only.
func DecodeSeries(filename string, r io.Reader) (*Series, error) {
	obs := make([]Observation, 0, 1024)
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var jo jobservation
		if err := json.Unmarshal(line, &jo); err != nil {
			return nil, fmt.Errorf("format error in %q line %d: %w", filename, i, err)
		}
		obs = append(obs, Observation{Date: jo.On, Price: jo.Price})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", filename, err)
	}

	s, err := NewSeries(obs)
	if err != nil {
		return nil, fmt.Errorf("invalid series in %q: %w", filename, err)
	}
	return s, nil
}

// EncodeSeries writes a series as JSONL, one observation per line, in
// chronological order.
func EncodeSeries(w io.Writer, s *Series) error {
	enc := json.NewEncoder(w)
	for o := range s.Observations() {
		if err := enc.Encode(jobservation{On: o.Date, Price: o.Price}); err != nil {
			return fmt.Errorf("cannot encode observation on %s: %w", o.Date, err)
		}
	}
	return nil
}
