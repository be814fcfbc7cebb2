package reference

// Major utilities by state with approximate residential customer counts.
// Source: EIA-861 data, supplemented by web research.
var majorUtilities = map[string][]KnownUtility{
	"AL": {{"Alabama Power Co", 1500000}, {"Tennessee Valley Authority", 0}},
	"AK": {{"Chugach Electric Assn Inc", 92000}, {"Golden Valley Elec Assn Inc", 45000}, {"Matanuska Electric Assn Inc", 60000}},
	"AZ": {{"Arizona Public Service Co", 1300000}, {"Tucson Electric Power Co", 430000}, {"Salt River Project", 1100000}},
	"AR": {{"Entergy Arkansas LLC", 720000}, {"Southwestern Electric Power Co", 110000}, {"Empire District Electric Co", 50000}},
	"CA": {{"Pacific Gas & Electric Co", 5500000}, {"Southern California Edison Co", 5100000}, {"San Diego Gas & Electric Co", 1500000}, {"Los Angeles Dept of Water & Power", 1500000}, {"Sacramento Municipal Util Dist", 650000}},
	"CO": {{"Public Service Co of Colorado", 1500000}, {"Colorado Springs Utilities", 240000}, {"Black Hills Colorado Electric", 100000}},
	"CT": {{"Eversource Energy", 1300000}, {"United Illuminating Co", 340000}},
	"DE": {{"Delmarva Power", 310000}},
	"FL": {{"Florida Power & Light Co", 5600000}, {"Duke Energy Florida LLC", 1900000}, {"Tampa Electric Co", 800000}, {"JEA", 490000}, {"Gulf Power Co", 480000}},
	"GA": {{"Georgia Power Co", 2700000}, {"Cobb EMC", 200000}, {"Jackson EMC", 230000}},
	"HI": {{"Hawaiian Electric Co Inc", 470000}, {"Maui Electric Co Ltd", 75000}, {"Hawaii Electric Light Co Inc", 85000}},
	"ID": {{"Idaho Power Co", 600000}, {"Rocky Mountain Power", 90000}, {"Avista Corp", 50000}},
	"IL": {{"Commonwealth Edison Co", 4000000}, {"Ameren Illinois Co", 1200000}, {"MidAmerican Energy Co", 150000}},
	"IN": {{"Indiana Michigan Power Co", 470000}, {"Duke Energy Indiana LLC", 850000}, {"Indianapolis Power & Light Co", 500000}, {"Indiana & Michigan Electric", 200000}},
	"IA": {{"MidAmerican Energy Co", 780000}, {"Alliant Energy", 500000}, {"Interstate Power and Light Co", 230000}},
	"KS": {{"Evergy Kansas Central", 700000}, {"Evergy Kansas Metro", 330000}, {"Empire District Electric Co", 50000}},
	"KY": {{"Kentucky Utilities Co", 540000}, {"Louisville Gas & Electric Co", 410000}, {"Duke Energy Kentucky", 150000}, {"Kentucky Power Co", 165000}},
	"LA": {{"Entergy Louisiana LLC", 1100000}, {"Cleco Power LLC", 300000}, {"Southwestern Electric Power Co", 150000}},
	"ME": {{"Central Maine Power Co", 640000}, {"Versant Power", 160000}},
	"MD": {{"Baltimore Gas & Electric Co", 1300000}, {"Potomac Electric Power Co", 600000}, {"Delmarva Power", 200000}},
	"MA": {{"Eversource Energy", 1500000}, {"National Grid", 1300000}, {"Unitil Energy Systems", 110000}},
	"MI": {{"DTE Electric Co", 2200000}, {"Consumers Energy Co", 1800000}, {"Indiana Michigan Power Co", 80000}},
	"MN": {{"Northern States Power Co", 1500000}, {"Minnesota Power", 150000}, {"Otter Tail Power Co", 65000}},
	"MS": {{"Entergy Mississippi LLC", 460000}, {"Mississippi Power Co", 190000}, {"Tennessee Valley Authority", 0}},
	"MO": {{"Ameren Missouri", 1200000}, {"Evergy Missouri West", 300000}, {"Empire District Electric Co", 170000}},
	"MT": {{"NorthWestern Corp", 380000}, {"Flathead Electric Coop", 60000}},
	"NE": {{"Omaha Public Power District", 390000}, {"Nebraska Public Power District", 250000}, {"Lincoln Electric System", 140000}},
	"NV": {{"NV Energy (Sierra Pacific)", 400000}, {"NV Energy (Nevada Power)", 1000000}},
	"NH": {{"Eversource Energy", 520000}, {"Liberty Utilities", 45000}, {"Unitil Energy Systems", 40000}},
	"NJ": {{"Public Service Elec & Gas Co", 2300000}, {"Jersey Central Power & Light", 1100000}, {"Atlantic City Electric Co", 560000}},
	"NM": {{"Public Service Co of New Mexico", 550000}, {"El Paso Electric Co", 110000}, {"Southwestern Public Service Co", 60000}},
	"NY": {{"Consolidated Edison Co", 3400000}, {"National Grid", 1700000}, {"New York State Elec & Gas Corp", 900000}, {"Central Hudson Gas & Elec Corp", 310000}, {"Rochester Gas & Electric Corp", 380000}, {"Long Island Power Authority", 1100000}},
	"NC": {{"Duke Energy Carolinas LLC", 2700000}, {"Duke Energy Progress LLC", 1700000}, {"Dominion Energy North Carolina", 130000}},
	"ND": {{"Montana-Dakota Utilities Co", 70000}, {"Otter Tail Power Co", 35000}, {"Xcel Energy", 40000}},
	"OH": {{"Ohio Edison Co", 1050000}, {"Cleveland Elec Illuminating Co", 750000}, {"Ohio Power Co", 1500000}, {"Duke Energy Ohio Inc", 720000}, {"Dayton Power & Light Co", 530000}},
	"OK": {{"Oklahoma Gas & Electric Co", 880000}, {"Public Service Co of Oklahoma", 560000}, {"Empire District Electric Co", 40000}},
	"OR": {{"Portland General Electric Co", 900000}, {"PacifiCorp", 600000}, {"Idaho Power Co", 30000}},
	"PA": {{"PECO Energy Co", 1600000}, {"PPL Electric Utilities Corp", 1400000}, {"Duquesne Light Co", 600000}, {"West Penn Power Co", 720000}, {"Metropolitan Edison Co", 560000}},
	"RI": {{"Rhode Island Energy", 500000}},
	"SC": {{"Duke Energy Carolinas LLC", 800000}, {"Duke Energy Progress LLC", 500000}, {"South Carolina Electric & Gas", 730000}},
	"SD": {{"Northwestern Energy", 75000}, {"Xcel Energy", 50000}, {"Otter Tail Power Co", 20000}},
	"TN": {{"Tennessee Valley Authority", 0}, {"Nashville Electric Service", 400000}, {"Memphis Light Gas & Water", 450000}, {"Knoxville Utilities Board", 200000}},
	"TX": {{"Oncor Electric Delivery Co", 3700000}, {"CenterPoint Energy", 2600000}, {"AEP Texas", 1100000}, {"Texas-New Mexico Power Co", 250000}, {"Austin Energy", 500000}, {"CPS Energy", 870000}},
	"UT": {{"Rocky Mountain Power", 950000}, {"City of St George", 35000}},
	"VT": {{"Green Mountain Power Corp", 270000}, {"Vermont Electric Coop", 33000}},
	"VA": {{"Dominion Energy Virginia", 2700000}, {"Appalachian Power Co", 530000}, {"Virginia Electric & Power Co", 0}},
	"WA": {{"Puget Sound Energy Inc", 1200000}, {"Avista Corp", 260000}, {"Seattle City Light", 450000}, {"Tacoma Power", 190000}, {"Snohomish County PUD No 1", 350000}},
	"WV": {{"Appalachian Power Co", 490000}, {"Monongahela Power Co", 390000}, {"Potomac Edison Co", 125000}},
	"WI": {{"Wisconsin Electric Power Co", 1100000}, {"Wisconsin Public Service Corp", 460000}, {"Alliant Energy", 480000}, {"Madison Gas & Electric Co", 160000}},
	"WY": {{"Rocky Mountain Power", 135000}, {"Cheyenne Light Fuel & Power Co", 42000}, {"Black Hills Power Inc", 25000}},
}
