package domain

import "time"

// GenInfo records the outcome of one artifact generation. It is persisted by
// the state store so unchanged kernels can be skipped on the next run.
type GenInfo struct {
	Kernel    string    `json:"kernel,omitzero"`
	BodyHash  string    `json:"body_hash,omitzero"`
	Artifact  string    `json:"artifact,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}
