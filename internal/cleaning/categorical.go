package cleaning

import (
	"regexp"

	"custclean/internal/table"
)

// Categorical match patterns. The anchored ones are prefix checks; the
// Sports pattern matches the standalone word anywhere in the value.
var (
	genderFemale  = regexp.MustCompile(`^[Ff]`)
	genderMale    = regexp.MustCompile(`^[Mm]`)
	educationBach = regexp.MustCompile(`^[Bb]`)
	vehicleLead   = regexp.MustCompile(`^[LlUu]`)
	vehicleSports = regexp.MustCompile(`\bSports\b`)
)

// rule rewrites cells matching pattern to a canonical value.
type rule struct {
	pattern *regexp.Regexp
	value   string
}

// applyRules rewrites every matching cell of the named column, testing each
// rule in order against the current cell value. Nulls and non-string cells
// pass through untouched; a missing column fails the stage.
func applyRules(t *table.Table, column string, rules ...rule) (*table.Table, error) {
	col, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	for i := 0; i < col.Len(); i++ {
		v, ok := col.StringAt(i)
		if !ok {
			continue
		}
		for _, r := range rules {
			if r.pattern.MatchString(v) {
				col.SetString(i, r.value)
				v = r.value
			}
		}
	}
	return t, nil
}

// NormalizeGender collapses gender values starting with F/f or M/m to the
// canonical F and M. Values matching neither are deliberately passed
// through, not rejected.
func NormalizeGender(t *table.Table) (*table.Table, error) {
	return applyRules(t, "gender",
		rule{genderFemale, "F"},
		rule{genderMale, "M"},
	)
}

// NormalizeEducation collapses any education value starting with B/b to
// Bachelor. Other degree levels pass through as free text; the rule is
// intentionally this narrow.
func NormalizeEducation(t *table.Table) (*table.Table, error) {
	return applyRules(t, "education",
		rule{educationBach, "Bachelor"},
	)
}

// NormalizeVehicleClass groups luxury-adjacent vehicle classes under the
// single Luxury label: first values led by L or U in either case, then
// values containing the standalone word Sports. The word check stays
// case-sensitive, so "sports car" passes through.
func NormalizeVehicleClass(t *table.Table) (*table.Table, error) {
	return applyRules(t, "vehicle_class",
		rule{vehicleLead, "Luxury"},
		rule{vehicleSports, "Luxury"},
	)
}
