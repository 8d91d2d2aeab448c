package identity

import (
	"encoding/json"
	"fmt"
)

// Location is one named postal location role.
type Location struct {
	meta

	Organization    string
	Street          string
	POBox           string
	POBoxPostalCode string
	PostalCode      string
	City            string
	State           string
	Country         string
	CountryCode     string
	Phone           string
	Fax             string
	Extra           map[string]string
}

// NewLocation builds a location role from archive fields.
func NewLocation(name string, fields []Field, warn *Warnings) (*Location, error) {
	if name == "" {
		return nil, fmt.Errorf("location without a name")
	}
	l := &Location{meta: newMeta(KindLocation, name)}
	for _, f := range fields {
		switch f.Name {
		case "organization":
			l.Organization = f.Value
		case "street":
			l.Street = f.Value
		case "pobox", "po-box":
			l.POBox = f.Value
		case "pobox-pc":
			l.POBoxPostalCode = f.Value
		case "postal-code", "pc":
			l.PostalCode = f.Value
		case "city":
			l.City = f.Value
		case "state":
			l.State = f.Value
		case "country":
			l.Country = f.Value
		case "country-code":
			l.CountryCode = f.Value
		case "phone":
			l.Phone = f.Value
		case "fax":
			l.Fax = f.Value
		default:
			if l.Extra == nil {
				l.Extra = make(map[string]string)
			}
			l.Extra[f.Name] = f.Value
			warn.Addf("location %q: unknown field %q", name, f.Name)
		}
	}
	return l, nil
}

// Attach rejects all children; locations are leaves.
func (l *Location) Attach(child Record, warn *Warnings) {
	warn.Addf("location %q cannot contain %s %q", l.name, child.Kind(), child.Name())
}

func (l *Location) children() []Record { return nil }

func (l *Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID              uint64            `json:"id"`
		Parent          uint64            `json:"parent,omitempty"`
		Kind            Kind              `json:"kind"`
		Name            string            `json:"name"`
		Organization    string            `json:"organization,omitempty"`
		Street          string            `json:"street,omitempty"`
		POBox           string            `json:"pobox,omitempty"`
		POBoxPostalCode string            `json:"pobox_pc,omitempty"`
		PostalCode      string            `json:"postal_code,omitempty"`
		City            string            `json:"city,omitempty"`
		State           string            `json:"state,omitempty"`
		Country         string            `json:"country,omitempty"`
		CountryCode     string            `json:"country_code,omitempty"`
		Phone           string            `json:"phone,omitempty"`
		Fax             string            `json:"fax,omitempty"`
		Extra           map[string]string `json:"extra,omitempty"`
	}{
		ID:              l.id,
		Parent:          l.parent,
		Kind:            l.kind,
		Name:            l.name,
		Organization:    l.Organization,
		Street:          l.Street,
		POBox:           l.POBox,
		POBoxPostalCode: l.POBoxPostalCode,
		PostalCode:      l.PostalCode,
		City:            l.City,
		State:           l.State,
		Country:         l.Country,
		CountryCode:     l.CountryCode,
		Phone:           l.Phone,
		Fax:             l.Fax,
		Extra:           l.Extra,
	})
}
