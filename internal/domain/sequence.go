package domain

// SequenceScope names a family of per-key counters.
type SequenceScope string

const (
	ScopeProjectCode  SequenceScope = "project_code"  // key: 4-letter code base
	ScopeModuleSerial SequenceScope = "module_serial" // key: project id
	ScopeSprintNumber SequenceScope = "sprint_number" // key: project id
	ScopeTaskSerial   SequenceScope = "task_serial"   // key: project id
)
