package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// Encode serializes jobs into the snapshot document kept by the durable slot.
// Empty collection encodes as [] and never as null.
func Encode(jobs []Job) ([]byte, error) {
	if jobs == nil {
		jobs = []Job{}
	}
	data, err := json.Marshal(jobs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode jobs: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot document. Unknown fields are ignored, unknown statuses are not.
func Decode(data []byte) ([]Job, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []Job{}, nil
	}
	var jobs []Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to decode jobs: %w", err)
	}
	if jobs == nil { // literal null
		return nil, fmt.Errorf("failed to decode jobs: expected array, got null")
	}
	for i, j := range jobs {
		if !j.Status.Valid() {
			return nil, fmt.Errorf("failed to decode jobs: job #%d (id %d) has no valid status", i, j.ID)
		}
	}
	return jobs, nil
}

// EncodeYAML serializes jobs as a YAML list, used for exports
func EncodeYAML(jobs []Job) ([]byte, error) {
	if jobs == nil {
		jobs = []Job{}
	}
	buf := bytes.Buffer{}
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(jobs); err != nil {
		return nil, fmt.Errorf("failed to encode jobs as yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to close yaml encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// Schema returns JSON schema of the snapshot document
func Schema() ([]byte, error) {
	r := jsonschema.Reflector{ExpandedStruct: false, DoNotReference: true}
	schema := r.Reflect(&[]Job{})
	schema.Title = "jobwise snapshot"
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
