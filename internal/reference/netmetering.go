package reference

import "github.com/solarcrm/ratesync/internal/models"

func rateptr(v float64) *float64 { return &v }

// Net-metering policy by state.
var netMeteringPolicies = map[string]models.NetMeteringPolicy{
	"AL": {HasNetMetering: false, NetMeteringType: "avoided_cost", ExportRate: nil},
	"AK": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"AZ": {HasNetMetering: true, NetMeteringType: "net_billing", ExportRate: nil},
	"AR": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"CA": {HasNetMetering: true, NetMeteringType: "net_billing", ExportRate: rateptr(0.05)},
	"CO": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"CT": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"DE": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"FL": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"GA": {HasNetMetering: false, NetMeteringType: "none", ExportRate: nil},
	"HI": {HasNetMetering: true, NetMeteringType: "net_billing", ExportRate: nil},
	"ID": {HasNetMetering: true, NetMeteringType: "net_billing", ExportRate: nil},
	"IL": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"IN": {HasNetMetering: true, NetMeteringType: "net_billing", ExportRate: nil},
	"IA": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"KS": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"KY": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"LA": {HasNetMetering: true, NetMeteringType: "net_billing", ExportRate: nil},
	"ME": {HasNetMetering: true, NetMeteringType: "net_billing", ExportRate: nil},
	"MD": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"MA": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"MI": {HasNetMetering: true, NetMeteringType: "net_billing", ExportRate: nil},
	"MN": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"MS": {HasNetMetering: false, NetMeteringType: "avoided_cost", ExportRate: nil},
	"MO": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"MT": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"NE": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"NV": {HasNetMetering: true, NetMeteringType: "net_billing", ExportRate: nil},
	"NH": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"NJ": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"NM": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"NY": {HasNetMetering: true, NetMeteringType: "net_billing", ExportRate: nil},
	"NC": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"ND": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"OH": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"OK": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"OR": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"PA": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"RI": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"SC": {HasNetMetering: true, NetMeteringType: "net_billing", ExportRate: nil},
	"SD": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"TN": {HasNetMetering: false, NetMeteringType: "avoided_cost", ExportRate: nil},
	"TX": {HasNetMetering: false, NetMeteringType: "none", ExportRate: nil},
	"UT": {HasNetMetering: true, NetMeteringType: "net_billing", ExportRate: nil},
	"VT": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"VA": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"WA": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"WV": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"WI": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
	"WY": {HasNetMetering: true, NetMeteringType: "NEM", ExportRate: nil},
}
