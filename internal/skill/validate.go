package skill

import (
	"fmt"
	"strings"

	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

// ValidationError represents a single validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// ValidationResult holds validation errors.
type ValidationResult struct {
	Errors []ValidationError
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error implements the error interface.
func (r *ValidationResult) Error() string {
	if len(r.Errors) == 0 {
		return ""
	}

	var messages []string
	for _, err := range r.Errors {
		messages = append(messages, err.Error())
	}

	return fmt.Sprintf("validation failed with %d error(s):\n  - %s",
		len(r.Errors), strings.Join(messages, "\n  - "))
}

// Add appends a validation error.
func (r *ValidationResult) Add(field, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// Validate checks the frontmatter fields a publish needs.
func (m *Manifest) Validate() *ValidationResult {
	result := &ValidationResult{}
	if strings.TrimSpace(m.Name) == "" {
		result.Add("name", "is required")
	}
	if strings.TrimSpace(m.Description) == "" {
		result.Add("description", "is required")
	}
	return result
}

// ValidatePublish returns a SKILL_002 error when required frontmatter is missing.
func (m *Manifest) ValidatePublish() error {
	result := m.Validate()
	if !result.HasErrors() {
		return nil
	}
	return clawerrors.SkillManifestInvalid("missing required frontmatter (name, description)").
		WithDetail("errors", result.Errors)
}

// NormalizeID adds the official owner to ids given without one.
func NormalizeID(id string) string {
	if strings.Contains(id, "/") {
		return id
	}
	return OfficialOwner + "/" + id
}

// FolderName maps an owner/name id to its install directory name
// (owner__name). Ids that could escape the skills directory are rejected.
func FolderName(id string) (string, error) {
	owner, name, found := strings.Cut(id, "/")
	if !found {
		if !validIDPart(id) {
			return "", clawerrors.InvalidArgument("skill id", id, "must look like owner/name")
		}
		return id, nil
	}
	if !validIDPart(owner) || !validIDPart(name) {
		return "", clawerrors.InvalidArgument("skill id", id, "must look like owner/name")
	}
	return owner + "__" + name, nil
}

// validIDPart accepts any owner or name that stays one path segment.
// Server ids may carry non-ASCII owners.
func validIDPart(s string) bool {
	if s == "" || s == "." || strings.Contains(s, "..") {
		return false
	}
	return !strings.ContainsAny(s, "/\\\x00")
}
