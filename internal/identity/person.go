package identity

import (
	"encoding/json"
	"fmt"
	"time"
)

// Person is a human identity with named e-mail, location, and login
// system roles attached to it.
type Person struct {
	meta

	FullName  string
	FirstName string
	Initials  string
	Prefix    string
	Surname   string
	Titles    string
	Nickname  string
	Gender    string
	Birth     string
	Language  string
	Charset   string
	Courtesy  string
	Extra     map[string]string

	Emails    []*Email
	Locations []*Location
	Systems   []*System
}

// NewPerson builds a person from archive fields. Unknown fields are
// kept in Extra with a warning; a missing name is fatal.
func NewPerson(name string, fields []Field, warn *Warnings) (*Person, error) {
	if name == "" {
		return nil, fmt.Errorf("person without a name")
	}
	p := &Person{meta: newMeta(KindPerson, name)}
	for _, f := range fields {
		switch f.Name {
		case "fullname":
			p.FullName = f.Value
		case "firstname":
			p.FirstName = f.Value
		case "initials":
			p.Initials = f.Value
		case "prefix":
			p.Prefix = f.Value
		case "surname":
			p.Surname = f.Value
		case "titles":
			p.Titles = f.Value
		case "nickname":
			p.Nickname = f.Value
		case "gender":
			p.Gender = f.Value
		case "birth":
			p.Birth = f.Value
		case "language":
			p.Language = f.Value
		case "charset":
			p.Charset = f.Value
		case "courtesy":
			p.Courtesy = f.Value
		default:
			if p.Extra == nil {
				p.Extra = make(map[string]string)
			}
			p.Extra[f.Name] = f.Value
			warn.Addf("person %q: unknown field %q", name, f.Name)
		}
	}
	if p.Birth != "" {
		if _, err := time.Parse("2006-01-02", p.Birth); err != nil {
			warn.Addf("person %q: birth %q is not a YYYY-MM-DD date", name, p.Birth)
		}
	}
	return p, nil
}

// Attach accepts e-mail, location, and system children. A child whose
// role name is already taken replaces the previous one.
func (p *Person) Attach(child Record, warn *Warnings) {
	switch c := child.(type) {
	case *Email:
		c.setParent(p.id)
		for i := range p.Emails {
			if p.Emails[i].Name() == c.Name() {
				warn.Addf("person %q: e-mail role %q replaced", p.name, c.Name())
				p.Emails[i] = c
				return
			}
		}
		p.Emails = append(p.Emails, c)
	case *Location:
		c.setParent(p.id)
		for i := range p.Locations {
			if p.Locations[i].Name() == c.Name() {
				warn.Addf("person %q: location role %q replaced", p.name, c.Name())
				p.Locations[i] = c
				return
			}
		}
		p.Locations = append(p.Locations, c)
	case *System:
		c.setParent(p.id)
		for i := range p.Systems {
			if p.Systems[i].Name() == c.Name() {
				warn.Addf("person %q: system role %q replaced", p.name, c.Name())
				p.Systems[i] = c
				return
			}
		}
		p.Systems = append(p.Systems, c)
	default:
		warn.Addf("person %q cannot contain %s %q", p.name, child.Kind(), child.Name())
	}
}

// Email returns the e-mail role with the given name, or nil.
func (p *Person) Email(name string) *Email {
	for _, e := range p.Emails {
		if e.Name() == name {
			return e
		}
	}
	return nil
}

// Location returns the location role with the given name, or nil.
func (p *Person) Location(name string) *Location {
	for _, l := range p.Locations {
		if l.Name() == name {
			return l
		}
	}
	return nil
}

// System returns the system role with the given name, or nil.
func (p *Person) System(name string) *System {
	for _, s := range p.Systems {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

func (p *Person) children() []Record {
	out := make([]Record, 0, len(p.Emails)+len(p.Locations)+len(p.Systems))
	for _, e := range p.Emails {
		out = append(out, e)
	}
	for _, l := range p.Locations {
		out = append(out, l)
	}
	for _, s := range p.Systems {
		out = append(out, s)
	}
	return out
}

func (p *Person) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        uint64            `json:"id"`
		Parent    uint64            `json:"parent,omitempty"`
		Kind      Kind              `json:"kind"`
		Name      string            `json:"name"`
		FullName  string            `json:"fullname,omitempty"`
		FirstName string            `json:"firstname,omitempty"`
		Initials  string            `json:"initials,omitempty"`
		Prefix    string            `json:"prefix,omitempty"`
		Surname   string            `json:"surname,omitempty"`
		Titles    string            `json:"titles,omitempty"`
		Nickname  string            `json:"nickname,omitempty"`
		Gender    string            `json:"gender,omitempty"`
		Birth     string            `json:"birth,omitempty"`
		Language  string            `json:"language,omitempty"`
		Charset   string            `json:"charset,omitempty"`
		Courtesy  string            `json:"courtesy,omitempty"`
		Extra     map[string]string `json:"extra,omitempty"`
		Emails    []*Email          `json:"emails,omitempty"`
		Locations []*Location       `json:"locations,omitempty"`
		Systems   []*System         `json:"systems,omitempty"`
	}{
		ID:        p.id,
		Parent:    p.parent,
		Kind:      p.kind,
		Name:      p.name,
		FullName:  p.FullName,
		FirstName: p.FirstName,
		Initials:  p.Initials,
		Prefix:    p.Prefix,
		Surname:   p.Surname,
		Titles:    p.Titles,
		Nickname:  p.Nickname,
		Gender:    p.Gender,
		Birth:     p.Birth,
		Language:  p.Language,
		Charset:   p.Charset,
		Courtesy:  p.Courtesy,
		Extra:     p.Extra,
		Emails:    p.Emails,
		Locations: p.Locations,
		Systems:   p.Systems,
	})
}
