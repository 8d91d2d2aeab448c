package identity

import (
	"encoding/json"
	"fmt"
)

// System is one named login on a host: where an identity can
// authenticate, not the machine itself.
type System struct {
	meta

	Hostname string
	OS       string
	Username string
	Password string
	Location string
	Extra    map[string]string
}

// NewSystem builds a system role from archive fields.
func NewSystem(name string, fields []Field, warn *Warnings) (*System, error) {
	if name == "" {
		return nil, fmt.Errorf("system without a name")
	}
	s := &System{meta: newMeta(KindSystem, name)}
	for _, f := range fields {
		switch f.Name {
		case "hostname":
			s.Hostname = f.Value
		case "os":
			s.OS = f.Value
		case "username":
			s.Username = f.Value
		case "password":
			s.Password = f.Value
		case "location":
			s.Location = f.Value
		default:
			if s.Extra == nil {
				s.Extra = make(map[string]string)
			}
			s.Extra[f.Name] = f.Value
			warn.Addf("system %q: unknown field %q", name, f.Name)
		}
	}
	return s, nil
}

// Attach rejects all children; systems are leaves.
func (s *System) Attach(child Record, warn *Warnings) {
	warn.Addf("system %q cannot contain %s %q", s.name, child.Kind(), child.Name())
}

func (s *System) children() []Record { return nil }

func (s *System) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID       uint64            `json:"id"`
		Parent   uint64            `json:"parent,omitempty"`
		Kind     Kind              `json:"kind"`
		Name     string            `json:"name"`
		Hostname string            `json:"hostname,omitempty"`
		OS       string            `json:"os,omitempty"`
		Username string            `json:"username,omitempty"`
		Password string            `json:"password,omitempty"`
		Location string            `json:"location,omitempty"`
		Extra    map[string]string `json:"extra,omitempty"`
	}{
		ID:       s.id,
		Parent:   s.parent,
		Kind:     s.kind,
		Name:     s.name,
		Hostname: s.Hostname,
		OS:       s.OS,
		Username: s.Username,
		Password: s.Password,
		Location: s.Location,
		Extra:    s.Extra,
	})
}
