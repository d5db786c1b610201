package auditlog

import (
	"strings"
	"time"
)

// Record writes a best-effort audit entry for a completed operation.
// Errors opening the repository or saving the entry are silently
// discarded so auditing never fails the command itself.
func Record(command string, args []string, meta Metadata, opErr error, start time.Time) {
	repo, err := Open()
	if err != nil {
		return
	}
	defer repo.Close()

	entry := &AuditEntry{
		Timestamp:    start.UTC(),
		Command:      command,
		Args:         strings.Join(SanitizeArgs(args), " "),
		Zone:         meta.Zone,
		ResourceType: meta.ResourceType,
		ResourceID:   meta.ResourceID,
		ResourceName: meta.ResourceName,
		DurationMs:   time.Since(start).Milliseconds(),
	}
	if opErr != nil {
		entry.Outcome = OutcomeError
		entry.Detail = opErr.Error()
	} else {
		entry.Outcome = OutcomeSuccess
	}
	_ = repo.Save(entry)
}
