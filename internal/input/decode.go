package input

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

// Kind is an input file encoding.
type Kind string

const (
	KindJSON  Kind = "json"
	KindJSONL Kind = "jsonl"
	KindYAML  Kind = "yaml"
	KindTOML  Kind = "toml"
)

// KindOf picks the encoding from a file name, ignoring a trailing .zst.
func KindOf(name string) (Kind, error) {
	name = strings.TrimSuffix(strings.ToLower(name), ".zst")
	switch filepath.Ext(name) {
	case ".json":
		return KindJSON, nil
	case ".jsonl", ".ndjson":
		return KindJSONL, nil
	case ".yaml", ".yml":
		return KindYAML, nil
	case ".toml":
		return KindTOML, nil
	default:
		return "", fmt.Errorf("unsupported input file %s (want .json, .jsonl, .yaml, .yml or .toml, optionally .zst)", name)
	}
}

// Load reads every record in path. Records without an id are named
// <file>#<n>, counting from 1.
func Load(path string) ([]Record, error) {
	name := filepath.Base(path)
	kind, err := KindOf(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(name), ".zst") {
		decoder, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("create zstd decoder: %w", err)
		}
		defer decoder.Close()
		r = decoder
		name = name[:len(name)-len(".zst")]
	}

	records, err := Decode(r, kind)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("decode %s: no assessments found", path)
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = fmt.Sprintf("%s#%d", base, i+1)
		}
	}
	return records, nil
}

// Decode reads records of the given kind. Unknown keys are rejected so that a
// misspelled section reads as an error rather than a missing field.
func Decode(r io.Reader, kind Kind) ([]Record, error) {
	switch kind {
	case KindJSON:
		return decodeJSON(r)
	case KindJSONL:
		return decodeJSONL(r)
	case KindYAML:
		return decodeYAML(r)
	case KindTOML:
		return decodeTOML(r)
	default:
		return nil, fmt.Errorf("unknown input kind %q", kind)
	}
}

// decodeJSON accepts a single object or an array of objects.
func decodeJSON(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if data[0] == '[' {
		var records []Record
		if err := dec.Decode(&records); err != nil {
			return nil, err
		}
		if err := onlyValue(dec); err != nil {
			return nil, err
		}
		return records, nil
	}

	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	if err := onlyValue(dec); err != nil {
		return nil, err
	}
	return []Record{rec}, nil
}

// onlyValue fails when anything but whitespace follows the decoded value.
func onlyValue(dec *json.Decoder) error {
	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return fmt.Errorf("after first value: %w", err)
	default:
		return fmt.Errorf("unexpected data after first value at offset %d", dec.InputOffset()-int64(len(extra)))
	}
}

func decodeJSONL(r io.Reader) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(text))
		dec.DisallowUnknownFields()
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := onlyValue(dec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// decodeYAML reads every document in the stream.
func decodeYAML(r io.Reader) ([]Record, error) {
	var records []Record

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	for {
		var rec Record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(records)+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// tomlFile is a single record at the top level, or a list under [[assessment]].
type tomlFile struct {
	ID         string         `toml:"id"`
	Note       string         `toml:"note"`
	Scores     map[string]int `toml:"scores"`
	Posture    *Posture       `toml:"posture"`
	Assessment []Record       `toml:"assessment"`
}

func decodeTOML(r io.Reader) ([]Record, error) {
	var doc tomlFile
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %s", undecoded[0])
	}

	single := Record{ID: doc.ID, Note: doc.Note, Scores: doc.Scores, Posture: doc.Posture}
	hasSingle := single.Scores != nil || single.Posture != nil

	switch {
	case len(doc.Assessment) > 0 && hasSingle:
		return nil, errors.New("use either top-level scores/posture or [[assessment]] tables, not both")
	case len(doc.Assessment) > 0:
		return doc.Assessment, nil
	case hasSingle || single.ID != "" || single.Note != "":
		return []Record{single}, nil
	default:
		return nil, nil
	}
}
