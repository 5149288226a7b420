package cleaning

import (
	"strings"

	"custclean/internal/table"
)

// stateNames maps the 50 two-letter USPS codes, plus the CALI variant that
// appears in the raw data, to full state names. The map is fixed at build
// time and never mutated.
var stateNames = map[string]string{
	"AL": "ALABAMA", "AK": "ALASKA", "AZ": "ARIZONA", "AR": "ARKANSAS",
	"CA": "CALIFORNIA", "CALI": "CALIFORNIA", "CO": "COLORADO",
	"CT": "CONNECTICUT", "DE": "DELAWARE", "FL": "FLORIDA", "GA": "GEORGIA",
	"HI": "HAWAII", "ID": "IDAHO", "IL": "ILLINOIS", "IN": "INDIANA",
	"IA": "IOWA", "KS": "KANSAS", "KY": "KENTUCKY", "LA": "LOUISIANA",
	"ME": "MAINE", "MD": "MARYLAND", "MA": "MASSACHUSETTS", "MI": "MICHIGAN",
	"MN": "MINNESOTA", "MS": "MISSISSIPPI", "MO": "MISSOURI", "MT": "MONTANA",
	"NE": "NEBRASKA", "NV": "NEVADA", "NH": "NEW HAMPSHIRE",
	"NJ": "NEW JERSEY", "NM": "NEW MEXICO", "NY": "NEW YORK",
	"NC": "NORTH CAROLINA", "ND": "NORTH DAKOTA", "OH": "OHIO",
	"OK": "OKLAHOMA", "OR": "OREGON", "PA": "PENNSYLVANIA",
	"RI": "RHODE ISLAND", "SC": "SOUTH CAROLINA", "SD": "SOUTH DAKOTA",
	"TN": "TENNESSEE", "TX": "TEXAS", "UT": "UTAH", "VT": "VERMONT",
	"VA": "VIRGINIA", "WA": "WASHINGTON", "WV": "WEST VIRGINIA",
	"WI": "WISCONSIN", "WY": "WYOMING",
}

// NormalizeState uppercases every state value, then swaps values present in
// the abbreviation map for full state names. Values absent from the map keep
// their uppercased form.
func NormalizeState(t *table.Table) (*table.Table, error) {
	col, err := t.Column("state")
	if err != nil {
		return nil, err
	}
	for i := 0; i < col.Len(); i++ {
		v, ok := col.StringAt(i)
		if !ok {
			continue
		}
		v = strings.ToUpper(v)
		if full, found := stateNames[v]; found {
			v = full
		}
		col.SetString(i, v)
	}
	return t, nil
}
