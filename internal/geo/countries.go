package geo

import "strings"

// alpha3 maps normalized country spellings (plus alpha-2 and alpha-3
// codes) to ISO alpha-3. Entries missing here make the aggregation drop
// the country, which matches how unresolvable input is treated upstream.
var alpha3 = map[string]string{
	"united states": "USA", "usa": "USA", "us": "USA", "united states of america": "USA",
	"canada": "CAN", "ca": "CAN", "can": "CAN",
	"mexico": "MEX", "mx": "MEX", "mex": "MEX",
	"brazil": "BRA", "br": "BRA", "bra": "BRA",
	"argentina": "ARG", "ar": "ARG", "arg": "ARG",
	"chile": "CHL", "cl": "CHL", "chl": "CHL",
	"colombia": "COL", "co": "COL", "col": "COL",
	"peru": "PER", "pe": "PER", "per": "PER",
	"united kingdom": "GBR", "uk": "GBR", "gb": "GBR", "gbr": "GBR", "great britain": "GBR",
	"ireland": "IRL", "ie": "IRL", "irl": "IRL",
	"france": "FRA", "fr": "FRA", "fra": "FRA",
	"germany": "DEU", "de": "DEU", "deu": "DEU",
	"netherlands": "NLD", "nl": "NLD", "nld": "NLD",
	"belgium": "BEL", "be": "BEL", "bel": "BEL",
	"spain": "ESP", "es": "ESP", "esp": "ESP",
	"portugal": "PRT", "pt": "PRT", "prt": "PRT",
	"italy": "ITA", "it": "ITA", "ita": "ITA",
	"switzerland": "CHE", "ch": "CHE", "che": "CHE",
	"austria": "AUT", "at": "AUT", "aut": "AUT",
	"poland": "POL", "pl": "POL", "pol": "POL",
	"czech republic": "CZE", "czechia": "CZE", "cz": "CZE", "cze": "CZE",
	"sweden": "SWE", "se": "SWE", "swe": "SWE",
	"norway": "NOR", "no": "NOR", "nor": "NOR",
	"denmark": "DNK", "dk": "DNK", "dnk": "DNK",
	"finland": "FIN", "fi": "FIN", "fin": "FIN",
	"greece": "GRC", "gr": "GRC", "grc": "GRC",
	"turkey": "TUR", "tr": "TUR", "tur": "TUR",
	"russia": "RUS", "ru": "RUS", "rus": "RUS", "russian federation": "RUS",
	"ukraine": "UKR", "ua": "UKR", "ukr": "UKR",
	"china": "CHN", "cn": "CHN", "chn": "CHN",
	"japan": "JPN", "jp": "JPN", "jpn": "JPN",
	"south korea": "KOR", "korea": "KOR", "kr": "KOR", "kor": "KOR",
	"india": "IND", "in": "IND", "ind": "IND",
	"singapore": "SGP", "sg": "SGP", "sgp": "SGP",
	"malaysia": "MYS", "my": "MYS", "mys": "MYS",
	"thailand": "THA", "th": "THA", "tha": "THA",
	"vietnam": "VNM", "vn": "VNM", "vnm": "VNM",
	"indonesia": "IDN", "id": "IDN", "idn": "IDN",
	"philippines": "PHL", "ph": "PHL", "phl": "PHL",
	"australia": "AUS", "au": "AUS", "aus": "AUS",
	"new zealand": "NZL", "nz": "NZL", "nzl": "NZL",
	"south africa": "ZAF", "za": "ZAF", "zaf": "ZAF",
	"nigeria": "NGA", "ng": "NGA", "nga": "NGA",
	"kenya": "KEN", "ke": "KEN", "ken": "KEN",
	"egypt": "EGY", "eg": "EGY", "egy": "EGY",
	"morocco": "MAR", "ma": "MAR", "mar": "MAR",
	"israel": "ISR", "il": "ISR", "isr": "ISR",
	"saudi arabia": "SAU", "sa": "SAU", "sau": "SAU",
	"united arab emirates": "ARE", "uae": "ARE", "ae": "ARE", "are": "ARE",
}

// Alpha3 resolves a free-text country to its ISO alpha-3 code.
func Alpha3(country string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(country))
	code, ok := alpha3[key]
	return code, ok
}

// fallbackCoords is the static table consulted when the external
// geocoding lookup fails. Roughly country centroids.
var fallbackCoords = map[string]Coordinates{
	"USA": {37.1, -95.7},
	"CAN": {56.1, -106.3},
	"MEX": {23.6, -102.6},
	"BRA": {-14.2, -51.9},
	"ARG": {-38.4, -63.6},
	"GBR": {55.4, -3.4},
	"IRL": {53.4, -8.2},
	"FRA": {46.2, 2.2},
	"DEU": {51.2, 10.5},
	"NLD": {52.1, 5.3},
	"ESP": {40.5, -3.7},
	"PRT": {39.4, -8.2},
	"ITA": {41.9, 12.6},
	"CHE": {46.8, 8.2},
	"POL": {51.9, 19.1},
	"SWE": {60.1, 18.6},
	"NOR": {60.5, 8.5},
	"TUR": {38.96, 35.2},
	"RUS": {61.5, 105.3},
	"UKR": {48.4, 31.2},
	"CHN": {35.9, 104.2},
	"JPN": {36.2, 138.3},
	"KOR": {35.9, 127.8},
	"IND": {20.6, 79.0},
	"SGP": {1.35, 103.8},
	"AUS": {-25.3, 133.8},
	"NZL": {-40.9, 174.9},
	"ZAF": {-30.6, 22.9},
	"NGA": {9.1, 8.7},
	"EGY": {26.8, 30.8},
	"ARE": {23.4, 53.8},
}

// Fallback returns the static coordinates for an alpha-3 code, or the
// (0,0) default.
func Fallback(code string) Coordinates {
	if c, ok := fallbackCoords[code]; ok {
		return c
	}
	return Coordinates{}
}
