package presentation

import (
	"github.com/born-ml/opref/internal/opref"
)

// KeyDTO represents a verified operator key for presentation.
type KeyDTO struct {
	Key     string `json:"key" yaml:"key"`
	Name    string `json:"name" yaml:"name"`
	Version int    `json:"version" yaml:"version"`
}

// MembershipDTO is the answer to one membership query.
type MembershipDTO struct {
	Key      string `json:"key" yaml:"key"`
	Verified bool   `json:"verified" yaml:"verified"`
}

// RepairDTO represents one normalization repair.
type RepairDTO struct {
	Kind  string   `json:"kind" yaml:"kind"`
	Index int      `json:"index" yaml:"index"`
	Entry string   `json:"entry" yaml:"entry"`
	Keys  []string `json:"keys" yaml:"keys"`
}

// AuditDTO summarizes a registry and the repairs applied to it.
type AuditDTO struct {
	Source  string      `json:"source" yaml:"source"`
	Keys    int         `json:"keys" yaml:"keys"`
	Digest  string      `json:"digest" yaml:"digest"`
	Repairs []RepairDTO `json:"repairs" yaml:"repairs"`
}

// FromRegistry converts every key of r to a DTO.
func FromRegistry(r *opref.Registry) []KeyDTO {
	dtos := make([]KeyDTO, 0, r.Len())
	for k := range r.Keys() {
		dtos = append(dtos, KeyDTO{Key: k.String(), Name: k.Name, Version: k.Version})
	}
	return dtos
}

// FromReport converts a normalization report. The result is never nil so it
// encodes as an empty list.
func FromReport(rep opref.Report) []RepairDTO {
	dtos := make([]RepairDTO, 0, len(rep.Repairs))
	for _, r := range rep.Repairs {
		dtos = append(dtos, RepairDTO{
			Kind:  r.Kind.String(),
			Index: r.Index,
			Entry: r.Entry,
			Keys:  r.Keys,
		})
	}
	return dtos
}

// NewAudit builds the audit summary of r.
func NewAudit(source string, r *opref.Registry) AuditDTO {
	return AuditDTO{
		Source:  source,
		Keys:    r.Len(),
		Digest:  r.DigestHex(),
		Repairs: FromReport(r.Report()),
	}
}
