package normalizer

import (
	"strings"

	"github.com/stwalsh4118/faasdoc/internal/models"
)

// owner prefers the flat owner fields of the FAAS header and falls back to
// the structured owners list.
func owner(p *models.FaasPayload) models.Party {
	party := models.Party{
		Name:    text(p.Faas.OwnerName),
		Address: text(p.Faas.OwnerAddress),
		Tin:     text(p.Faas.OwnerTin),
	}

	if party.Name == "" {
		names := make([]string, 0, len(p.Owners))
		for _, o := range p.Owners {
			if name := OwnerDisplayName(o); name != "" {
				names = append(names, name)
			}
		}
		party.Name = strings.Join(names, "; ")
	}

	if len(p.Owners) > 0 {
		if party.Address == "" {
			party.Address = OwnerDisplayAddress(p.Owners[0])
		}
		if party.Tin == "" {
			party.Tin = text(p.Owners[0].Tin)
		}
	}

	return party
}

// OwnerDisplayName formats an owner as "First M. Last Suffix".
func OwnerDisplayName(o models.OwnerPayload) string {
	parts := make([]string, 0, 4)
	if first := text(o.FirstName); first != "" {
		parts = append(parts, first)
	}
	if middle := text(o.MiddleName); middle != "" {
		initial := []rune(middle)[0]
		parts = append(parts, strings.ToUpper(string(initial))+".")
	}
	if last := text(o.LastName); last != "" {
		parts = append(parts, last)
	}
	if suffix := text(o.Suffix); suffix != "" {
		parts = append(parts, suffix)
	}
	return strings.Join(parts, " ")
}

// OwnerDisplayAddress joins the non-empty address parts with ", ".
func OwnerDisplayAddress(o models.OwnerPayload) string {
	fields := []models.Scalar{
		o.AddressHouseNo,
		o.AddressStreet,
		o.AddressBarangay,
		o.AddressMunicipality,
		o.AddressProvince,
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if v := text(f); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}
