package edsm

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go-edsm/pkg/edsm/decode"
	"go-edsm/pkg/edsm/models"
)

// LoadSystems reads a JSON array of systems from path, such as an EDSM
// nightly dump. Paths ending in .gz are decompressed on the fly. The
// information block is optional, as in the api-system-v1 replies.
func LoadSystems(path string) ([]models.System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open systems file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	systems, err := ReadSystems(r)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return systems, nil
}

// MustLoadSystems is LoadSystems for fixtures; it panics on any failure
func MustLoadSystems(path string) []models.System {
	systems, err := LoadSystems(path)
	if err != nil {
		panic(err)
	}
	return systems
}

// ReadSystems decodes a JSON array of systems one element at a time, so a
// full dump never has to sit in memory as raw bytes
func ReadSystems(r io.Reader) ([]models.System, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, decode.Unrecognized("", fmt.Errorf("reading opening token: %w", err))
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, decode.Unrecognized("", errors.New("expected a JSON array of systems"))
	}

	systems := []models.System{}
	for i := 0; dec.More(); i++ {
		var s models.System
		if err := dec.Decode(&s); err != nil {
			return nil, decode.Wrap(fmt.Sprintf("[%d]", i), err)
		}
		systems = append(systems, s)
	}

	if _, err := dec.Token(); err != nil {
		return nil, decode.Unrecognized("", fmt.Errorf("reading closing token: %w", err))
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, decode.Unrecognized("", errors.New("trailing data after systems array"))
	}
	return systems, nil
}
