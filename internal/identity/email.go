package identity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Email is one named e-mail role: an address plus the trimmings a
// mailer cares about.
type Email struct {
	meta

	Address      string
	Comment      string
	Charset      string
	Domain       string
	Local        string
	Username     string
	Organization string
	Phrase       string
	Signature    string
	PGPKey       string
	Extra        map[string]string
}

// NewEmail builds an e-mail role from archive fields.
func NewEmail(name string, fields []Field, warn *Warnings) (*Email, error) {
	if name == "" {
		return nil, fmt.Errorf("e-mail role without a name")
	}
	e := &Email{meta: newMeta(KindEmail, name)}
	for _, f := range fields {
		switch f.Name {
		case "address":
			e.Address = f.Value
		case "comment":
			e.Comment = f.Value
		case "charset":
			e.Charset = f.Value
		case "domain":
			e.Domain = f.Value
		case "local":
			e.Local = f.Value
		case "username":
			e.Username = f.Value
		case "organization":
			e.Organization = f.Value
		case "phrase":
			e.Phrase = f.Value
		case "signature":
			e.Signature = f.Value
		case "pgp-key", "pgpkey":
			e.PGPKey = f.Value
		default:
			if e.Extra == nil {
				e.Extra = make(map[string]string)
			}
			e.Extra[f.Name] = f.Value
			warn.Addf("e-mail role %q: unknown field %q", name, f.Name)
		}
	}
	if e.Address != "" && !strings.Contains(e.Address, "@") {
		warn.Addf("e-mail role %q: address %q has no @", name, e.Address)
	}
	return e, nil
}

// Attach rejects all children; e-mail roles are leaves.
func (e *Email) Attach(child Record, warn *Warnings) {
	warn.Addf("e-mail role %q cannot contain %s %q", e.name, child.Kind(), child.Name())
}

func (e *Email) children() []Record { return nil }

func (e *Email) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID           uint64            `json:"id"`
		Parent       uint64            `json:"parent,omitempty"`
		Kind         Kind              `json:"kind"`
		Name         string            `json:"name"`
		Address      string            `json:"address,omitempty"`
		Comment      string            `json:"comment,omitempty"`
		Charset      string            `json:"charset,omitempty"`
		Domain       string            `json:"domain,omitempty"`
		Local        string            `json:"local,omitempty"`
		Username     string            `json:"username,omitempty"`
		Organization string            `json:"organization,omitempty"`
		Phrase       string            `json:"phrase,omitempty"`
		Signature    string            `json:"signature,omitempty"`
		PGPKey       string            `json:"pgp_key,omitempty"`
		Extra        map[string]string `json:"extra,omitempty"`
	}{
		ID:           e.id,
		Parent:       e.parent,
		Kind:         e.kind,
		Name:         e.name,
		Address:      e.Address,
		Comment:      e.Comment,
		Charset:      e.Charset,
		Domain:       e.Domain,
		Local:        e.Local,
		Username:     e.Username,
		Organization: e.Organization,
		Phrase:       e.Phrase,
		Signature:    e.Signature,
		PGPKey:       e.PGPKey,
		Extra:        e.Extra,
	})
}
