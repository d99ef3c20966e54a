package store

import (
	"fmt"
	"slices"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:generate go run github.com/go-pkgz/enum@latest -type status -lower

// status is the stage a job application occupies. Input for the enum generator only,
// use the generated Status type and its constants.
type status int

const (
	statusApplied status = iota
	statusInterview
	statusOffered
	statusRejected
)

// Valid reports whether the status is one of the declared values, zero Status is not
func (e Status) Valid() bool {
	return slices.Contains(StatusValues, e)
}

// JSONSchema describes status as string enum in the snapshot schema
func (Status) JSONSchema() *jsonschema.Schema {
	res := &jsonschema.Schema{Type: "string"}
	for _, name := range StatusNames {
		res.Enum = append(res.Enum, name)
	}
	return res
}

// JobData is everything describing a job application except its id
type JobData struct {
	Company     string `json:"company" yaml:"company"`
	Role        string `json:"role" yaml:"role"`
	Pay         string `json:"pay" yaml:"pay"`
	DateApplied string `json:"dateApplied" yaml:"dateApplied"`
	Status      Status `json:"status" yaml:"status"`
	Notes       string `json:"notes" yaml:"notes"`
}

// Job is a tracked job application
type Job struct {
	ID      int64 `json:"id" yaml:"id"`
	JobData `yaml:",inline"`
}

// validate checks required fields and status
func (d JobData) validate() error {
	if strings.TrimSpace(d.Company) == "" {
		return fmt.Errorf("%w: company is required", ErrInvalidJob)
	}
	if strings.TrimSpace(d.Role) == "" {
		return fmt.Errorf("%w: role is required", ErrInvalidJob)
	}
	if strings.TrimSpace(d.DateApplied) == "" {
		return fmt.Errorf("%w: dateApplied is required", ErrInvalidJob)
	}
	if !d.Status.Valid() {
		return fmt.Errorf("%w: invalid status %q", ErrInvalidJob, d.Status.String())
	}
	return nil
}
