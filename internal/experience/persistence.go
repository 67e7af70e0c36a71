package experience

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSONL writes samples to w as JSON Lines, one sample per line.
func WriteJSONL(w io.Writer, samples []Sample) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for i, s := range samples {
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding sample %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// ReadJSONL reads samples back from a JSON Lines stream.
func ReadJSONL(r io.Reader) ([]Sample, error) {
	var samples []Sample
	dec := json.NewDecoder(r)
	for {
		var s Sample
		if err := dec.Decode(&s); err == io.EOF {
			return samples, nil
		} else if err != nil {
			return samples, fmt.Errorf("decoding sample %d: %w", len(samples), err)
		}
		samples = append(samples, s)
	}
}

// SaveFile writes samples to path as JSON Lines, replacing any existing file.
func SaveFile(path string, samples []Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating experience file: %w", err)
	}
	if err := WriteJSONL(f, samples); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile reads samples from a JSON Lines file written by SaveFile.
func LoadFile(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening experience file: %w", err)
	}
	defer f.Close()
	return ReadJSONL(f)
}
