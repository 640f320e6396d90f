package extractor

import "strings"

// organizationDelimiter separates the organization from the employment type
// in a single detail fragment, e.g. "Acme Corp · Full-time".
const organizationDelimiter = " · "

// Details are the typed fields decomposed from an item's detail fragments.
// Absent fields stay "".
type Details struct {
	Organization string
	Position     string
	DateRange    string
	Location     string
}

// DescriptionSkills are the typed fields decomposed from an item's
// description/skills fragments.
type DescriptionSkills struct {
	Description string
	Skills      string
}

// DecomposeDetails maps an ordered sequence of raw detail fragments to
// typed fields by position:
//
//	fragment[0] -> organization (split on the first " · " into
//	               organization/position when present)
//	fragment[1] -> date range
//	fragment[2] -> location
//
// Fragments beyond index 2 are ignored. Pure function, no DOM access.
func DecomposeDetails(fragments []string) Details {
	var d Details
	if len(fragments) == 0 {
		return d
	}
	d.Organization, d.Position = SplitOrganization(fragments[0])
	if len(fragments) >= 2 {
		d.DateRange = fragments[1]
	}
	if len(fragments) >= 3 {
		d.Location = fragments[2]
	}
	return d
}

// SplitOrganization splits "Acme Corp · Full-time" on the first delimiter
// occurrence. Without a delimiter the whole string is the organization.
func SplitOrganization(fragment string) (organization, position string) {
	organization, position, _ = strings.Cut(fragment, organizationDelimiter)
	return organization, position
}

// DecomposeDescriptionSkills maps description/skills fragments by count:
// a lone fragment is the skills tag list (never the description); with two
// or more, the first is the description and the last is the skills list.
// Fragments strictly between first and last are discarded.
func DecomposeDescriptionSkills(fragments []string) DescriptionSkills {
	var ds DescriptionSkills
	switch len(fragments) {
	case 0:
	case 1:
		ds.Skills = fragments[0]
	default:
		ds.Description = fragments[0]
		ds.Skills = fragments[len(fragments)-1]
	}
	return ds
}
