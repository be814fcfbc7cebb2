package reference

// EIA average retail residential electricity prices by state, dollars
// per kWh. Source: EIA Electric Power Monthly.
var eiaStateAvgRates = map[string]float64{
	"AL": 0.1398, "AK": 0.2350, "AZ": 0.1305, "AR": 0.1187, "CA": 0.2737,
	"CO": 0.1412, "CT": 0.2663, "DE": 0.1432, "FL": 0.1398, "GA": 0.1323,
	"HI": 0.3878, "ID": 0.1060, "IL": 0.1547, "IN": 0.1362, "IA": 0.1397,
	"KS": 0.1390, "KY": 0.1181, "LA": 0.1133, "ME": 0.2245, "MD": 0.1566,
	"MA": 0.2837, "MI": 0.1783, "MN": 0.1407, "MS": 0.1267, "MO": 0.1262,
	"MT": 0.1194, "NE": 0.1171, "NV": 0.1285, "NH": 0.2361, "NJ": 0.1792,
	"NM": 0.1382, "NY": 0.2226, "NC": 0.1218, "ND": 0.1142, "OH": 0.1413,
	"OK": 0.1153, "OR": 0.1199, "PA": 0.1622, "RI": 0.2678, "SC": 0.1315,
	"SD": 0.1275, "TN": 0.1177, "TX": 0.1356, "UT": 0.1076, "VT": 0.2074,
	"VA": 0.1297, "WA": 0.1047, "WV": 0.1243, "WI": 0.1574, "WY": 0.1109,
}
