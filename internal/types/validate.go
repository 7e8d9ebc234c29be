// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks that every experience entry carries a title and a company.
func (p *Profile) Validate() error {
	return validate.Struct(p)
}

// Validate checks that the posting has a title and a company.
func (j *JobPosting) Validate() error {
	return validate.Struct(j)
}
