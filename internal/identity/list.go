package identity

import (
	"encoding/json"
	"fmt"
)

// EmailList is a named collection of e-mail roles, for mailing lists
// and shared aliases.
type EmailList struct {
	meta

	Description string
	Extra       map[string]string

	Emails []*Email
}

// NewEmailList builds an e-mail list from archive fields.
func NewEmailList(name string, fields []Field, warn *Warnings) (*EmailList, error) {
	if name == "" {
		return nil, fmt.Errorf("e-mail list without a name")
	}
	l := &EmailList{meta: newMeta(KindList, name)}
	for _, f := range fields {
		switch f.Name {
		case "description":
			l.Description = f.Value
		default:
			if l.Extra == nil {
				l.Extra = make(map[string]string)
			}
			l.Extra[f.Name] = f.Value
			warn.Addf("e-mail list %q: unknown field %q", name, f.Name)
		}
	}
	return l, nil
}

// Attach accepts e-mail children only.
func (l *EmailList) Attach(child Record, warn *Warnings) {
	c, ok := child.(*Email)
	if !ok {
		warn.Addf("e-mail list %q cannot contain %s %q", l.name, child.Kind(), child.Name())
		return
	}
	c.setParent(l.id)
	for i := range l.Emails {
		if l.Emails[i].Name() == c.Name() {
			warn.Addf("e-mail list %q: e-mail role %q replaced", l.name, c.Name())
			l.Emails[i] = c
			return
		}
	}
	l.Emails = append(l.Emails, c)
}

// Email returns the member with the given role name, or nil.
func (l *EmailList) Email(name string) *Email {
	for _, e := range l.Emails {
		if e.Name() == name {
			return e
		}
	}
	return nil
}

func (l *EmailList) children() []Record {
	out := make([]Record, 0, len(l.Emails))
	for _, e := range l.Emails {
		out = append(out, e)
	}
	return out
}

func (l *EmailList) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          uint64            `json:"id"`
		Parent      uint64            `json:"parent,omitempty"`
		Kind        Kind              `json:"kind"`
		Name        string            `json:"name"`
		Description string            `json:"description,omitempty"`
		Extra       map[string]string `json:"extra,omitempty"`
		Emails      []*Email          `json:"emails,omitempty"`
	}{
		ID:          l.id,
		Parent:      l.parent,
		Kind:        l.kind,
		Name:        l.name,
		Description: l.Description,
		Extra:       l.Extra,
		Emails:      l.Emails,
	})
}
