package consts

import "strings"

// provinceAliases repairs misspelled or renamed province labels seen in
// the JHU tables, keyed and valued in lower case.
var provinceAliases = map[string]string{
	"fench guiana":                      "french guiana",
	"st martin":                         "saint martin",
	"virgin islands, u.s.":              "virgin islands",
	"falkland islands (islas malvinas)": "falkland islands (malvinas)",
	"unknown location":                  "unknown",
}

// StandardProvince converts an upstream province label into its published
// form: lower case, trimmed, known upstream misspellings repaired.
func StandardProvince(province string) string {
	key := strings.ToLower(strings.TrimSpace(province))
	if alias, ok := provinceAliases[key]; ok {
		return alias
	}
	return key
}
