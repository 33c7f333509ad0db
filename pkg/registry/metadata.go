package registry

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"
)

// Metadata is the parsed document a registry returned for one package.
// Its shape is defined by the registry; the accessors below read the common
// npm packument fields and return zero values when a field is missing or has an
// unexpected type.
type Metadata struct {
	raw json.RawMessage
	doc any
}

func parseMetadata(body []byte) (*Metadata, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return &Metadata{raw: json.RawMessage(body), doc: doc}, nil
}

// Value returns the parsed JSON value (map[string]any for objects).
func (m *Metadata) Value() any { return m.doc }

// Raw returns the response body exactly as received.
func (m *Metadata) Raw() json.RawMessage { return m.raw }

// Object returns the document as a JSON object, or nil if it is not one.
func (m *Metadata) Object() map[string]any {
	obj, _ := m.doc.(map[string]any)
	return obj
}

// Name returns the package name.
func (m *Metadata) Name() string {
	s, _ := m.Object()["name"].(string)
	return s
}

// LatestVersion returns the version tagged "latest", or the document's own
// "version" field for single-version documents.
func (m *Metadata) LatestVersion() string {
	if tags, ok := m.Object()["dist-tags"].(map[string]any); ok {
		if latest, ok := tags["latest"].(string); ok {
			return latest
		}
	}
	s, _ := m.Object()["version"].(string)
	return s
}

// Versions returns the published version strings in sorted order.
func (m *Metadata) Versions() []string {
	versions, ok := m.Object()["versions"].(map[string]any)
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(versions))
}

// Description returns the latest version's description.
func (m *Metadata) Description() string {
	return extractField(m.field("description"), "")
}

// License returns the latest version's license identifier.
func (m *Metadata) License() string {
	return extractField(m.field("license"), "type")
}

// Author returns the latest version's author name.
func (m *Metadata) Author() string {
	return extractField(m.field("author"), "name")
}

// Homepage returns the latest version's homepage URL.
func (m *Metadata) Homepage() string {
	return extractField(m.field("homepage"), "")
}

// Repository returns the latest version's repository URL in https form.
func (m *Metadata) Repository() string {
	return normalizeRepoURL(extractField(m.field("repository"), "url"))
}

// Dependencies returns the sorted runtime dependency names of the latest version.
func (m *Metadata) Dependencies() []string {
	deps, ok := m.field("dependencies").(map[string]any)
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(deps))
}

// field looks key up on the latest version document, then on the top level.
func (m *Metadata) field(key string) any {
	obj := m.Object()
	if versions, ok := obj["versions"].(map[string]any); ok {
		if v, ok := versions[m.LatestVersion()].(map[string]any); ok {
			if val, ok := v[key]; ok {
				return val
			}
		}
	}
	return obj[key]
}

func extractField(v any, field string) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		if s, ok := val[field].(string); ok {
			return s
		}
	}
	return ""
}

var repoURLReplacer = strings.NewReplacer(
	"git@github.com:", "https://github.com/",
	"git://github.com/", "https://github.com/",
)

func normalizeRepoURL(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "git+")
	s = repoURLReplacer.Replace(s)
	return strings.TrimSuffix(s, ".git")
}
