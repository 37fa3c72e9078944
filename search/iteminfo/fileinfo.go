package iteminfo

import (
	"time"
)

// Kind is the node type of a visited entry.
type Kind int

const (
	FileKind Kind = iota
	DirectoryKind
)

// String returns the long form used in text output.
func (k Kind) String() string {
	if k == DirectoryKind {
		return "directory"
	}
	return "file"
}

// Code returns the short form used in structured records ("f" or "d").
func (k Kind) Code() string {
	if k == DirectoryKind {
		return "d"
	}
	return "f"
}

// Details holds the metadata extracted for a single entry when detail output is requested.
type Details struct {
	Kind       Kind
	Size       int64
	Modified   time.Time
	Accessed   time.Time
	Created    time.Time
	HasCreated bool // false when the platform or filesystem does not record birth time
}

// Record is the structured-output projection of an entry with details.
type Record struct {
	FileType string `json:"filetype" yaml:"filetype"` // "f" or "d"
	Name     string `json:"name" yaml:"name"`
	Path     string `json:"path" yaml:"path"`
	Size     int64  `json:"size" yaml:"size"`         // size in bytes
	Modified int64  `json:"modified" yaml:"modified"` // unix seconds
	Accessed int64  `json:"accessed" yaml:"accessed"` // unix seconds
	Created  *int64 `json:"created,omitempty" yaml:"created,omitempty"`
}
