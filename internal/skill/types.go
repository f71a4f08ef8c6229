package skill

const (
	// ManifestName is the file every skill directory carries.
	ManifestName = "SKILL.md"

	// ReadmeName, when present, replaces the SKILL.md body as the published readme.
	ReadmeName = "README.md"

	// DefaultVersion is assumed for skills whose frontmatter has no version.
	DefaultVersion = "0.0.0"

	// OfficialOwner is the owner used for ids given without one.
	OfficialOwner = "official"
)

// Manifest is the YAML frontmatter of SKILL.md.
// Published skills need Name and Description; installed skills also carry
// the marketplace ID, owner and (for admin installs) review Status.
type Manifest struct {
	ID          string         `yaml:"id,omitempty"`
	OwnerID     string         `yaml:"owner_id,omitempty"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Version     string         `yaml:"version,omitempty"`
	Icon        string         `yaml:"icon,omitempty"`
	Author      string         `yaml:"author,omitempty"`
	Status      string         `yaml:"status,omitempty"`
	Metadata    map[string]any `yaml:"metadata,omitempty"`
}

// ResolvedIcon returns Icon, falling back to metadata.clawdbot.emoji.
func (m *Manifest) ResolvedIcon() string {
	if m.Icon != "" {
		return m.Icon
	}
	bot, ok := m.Metadata["clawdbot"].(map[string]any)
	if !ok {
		return ""
	}
	emoji, _ := bot["emoji"].(string)
	return emoji
}

// ResolvedVersion returns Version or DefaultVersion.
func (m *Manifest) ResolvedVersion() string {
	if m.Version == "" {
		return DefaultVersion
	}
	return m.Version
}

// Bundle is a skill as served by the marketplace: manifest fields, the
// readme and the file tree.
type Bundle struct {
	ID          string
	OwnerID     string
	OwnerName   string
	Name        string
	Description string
	Version     string
	Icon        string
	Status      string
	Readme      string
	Files       map[string]string
	Metadata    map[string]any
}

// Manifest returns the frontmatter written into an installed SKILL.md.
func (b *Bundle) Manifest(includeStatus bool) Manifest {
	m := Manifest{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Version:     b.Version,
		Icon:        b.Icon,
		Author:      b.OwnerName,
	}
	if includeStatus {
		m.Status = b.Status
	}
	if len(b.Metadata) > 0 {
		m.Metadata = b.Metadata
	}
	return m
}
