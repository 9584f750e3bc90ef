package permission

// sectionAliases maps the camelCase section keys some clients still send
// to the canonical snake_case codes. Normalization happens once at the
// API boundary instead of inside resolution logic.
var sectionAliases = map[string]string{
	"businessOverview":   SectionBusinessOverview,
	"peopleManagement":   SectionPeopleManagement,
	"jobManagement":      SectionJobManagement,
	"shiftOps":           SectionShiftOps,
	"businessManagement": SectionBusinessManagement,
}

// NormalizeSectionCode returns the canonical section code for key,
// resolving known camelCase aliases. Unknown keys pass through unchanged
// so the caller can report them against the catalog.
func NormalizeSectionCode(key string) string {
	if canonical, ok := sectionAliases[key]; ok {
		return canonical
	}
	return key
}
