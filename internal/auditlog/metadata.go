package auditlog

// Metadata identifies the resource an audit entry is about.
type Metadata struct {
	Zone         string
	ResourceType string
	ResourceID   string
	ResourceName string
}
