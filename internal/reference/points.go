package reference

// Two to four population centers per state; a 100-mile radius around
// each captures that state's major utilities.
var stateQueryPoints = map[string][]GeoQueryPoint{
	"AL": {{"Birmingham", 33.52, -86.81}, {"Mobile", 30.69, -88.04}, {"Huntsville", 34.73, -86.59}},
	"AK": {{"Anchorage", 61.22, -149.90}, {"Fairbanks", 64.84, -147.72}, {"Juneau", 58.30, -134.42}},
	"AZ": {{"Phoenix", 33.45, -112.07}, {"Tucson", 32.22, -110.97}, {"Flagstaff", 35.20, -111.65}},
	"AR": {{"Little Rock", 34.75, -92.29}, {"Fayetteville", 36.06, -94.16}, {"Jonesboro", 35.84, -90.70}},
	"CA": {{"Los Angeles", 34.05, -118.24}, {"San Francisco", 37.77, -122.42}, {"Sacramento", 38.58, -121.49}, {"San Diego", 32.72, -117.16}},
	"CO": {{"Denver", 39.74, -104.99}, {"Colorado Springs", 38.83, -104.82}, {"Grand Junction", 39.06, -108.55}},
	"CT": {{"Hartford", 41.76, -72.68}, {"New Haven", 41.31, -72.92}, {"Stamford", 41.05, -73.54}},
	"DE": {{"Wilmington", 39.74, -75.55}, {"Dover", 39.16, -75.52}},
	"FL": {{"Miami", 25.76, -80.19}, {"Orlando", 28.54, -81.38}, {"Tampa", 27.95, -82.46}, {"Jacksonville", 30.33, -81.66}},
	"GA": {{"Atlanta", 33.75, -84.39}, {"Savannah", 32.08, -81.09}, {"Augusta", 33.47, -81.97}},
	"HI": {{"Honolulu", 21.31, -157.86}, {"Hilo", 19.72, -155.08}, {"Kahului", 20.89, -156.47}},
	"ID": {{"Boise", 43.62, -116.20}, {"Idaho Falls", 43.47, -112.03}, {"Coeur d'Alene", 47.68, -116.78}},
	"IL": {{"Chicago", 41.88, -87.63}, {"Springfield", 39.78, -89.65}, {"Rockford", 42.27, -89.09}},
	"IN": {{"Indianapolis", 39.77, -86.16}, {"Fort Wayne", 41.08, -85.14}, {"Evansville", 37.97, -87.56}},
	"IA": {{"Des Moines", 41.59, -93.62}, {"Cedar Rapids", 41.98, -91.66}, {"Davenport", 41.52, -90.58}},
	"KS": {{"Wichita", 37.69, -97.34}, {"Topeka", 39.05, -95.68}, {"Kansas City", 39.11, -94.63}},
	"KY": {{"Louisville", 38.25, -85.76}, {"Lexington", 38.04, -84.50}, {"Bowling Green", 36.99, -86.44}},
	"LA": {{"New Orleans", 29.95, -90.07}, {"Baton Rouge", 30.45, -91.19}, {"Shreveport", 32.53, -93.75}},
	"ME": {{"Portland", 43.66, -70.26}, {"Bangor", 44.80, -68.77}, {"Augusta", 44.31, -69.78}},
	"MD": {{"Baltimore", 39.29, -76.61}, {"Rockville", 39.08, -77.15}, {"Annapolis", 38.98, -76.49}},
	"MA": {{"Boston", 42.36, -71.06}, {"Worcester", 42.26, -71.80}, {"Springfield", 42.10, -72.59}},
	"MI": {{"Detroit", 42.33, -83.05}, {"Grand Rapids", 42.96, -85.66}, {"Traverse City", 44.76, -85.62}},
	"MN": {{"Minneapolis", 44.98, -93.27}, {"Rochester", 44.02, -92.47}, {"Duluth", 46.79, -92.10}},
	"MS": {{"Jackson", 32.30, -90.18}, {"Gulfport", 30.37, -89.09}, {"Tupelo", 34.26, -88.70}},
	"MO": {{"Kansas City", 39.10, -94.58}, {"St. Louis", 38.63, -90.20}, {"Springfield", 37.22, -93.29}},
	"MT": {{"Billings", 45.78, -108.50}, {"Missoula", 46.87, -114.00}, {"Great Falls", 47.51, -111.30}},
	"NE": {{"Omaha", 41.26, -95.94}, {"Lincoln", 40.81, -96.70}, {"Grand Island", 40.92, -98.34}},
	"NV": {{"Las Vegas", 36.17, -115.14}, {"Reno", 39.53, -119.81}, {"Carson City", 39.16, -119.77}},
	"NH": {{"Manchester", 42.99, -71.46}, {"Concord", 43.21, -71.54}, {"Nashua", 42.77, -71.47}},
	"NJ": {{"Newark", 40.74, -74.17}, {"Trenton", 40.22, -74.76}, {"Atlantic City", 39.36, -74.42}},
	"NM": {{"Albuquerque", 35.08, -106.65}, {"Las Cruces", 32.35, -106.76}, {"Santa Fe", 35.69, -105.94}},
	"NY": {{"New York", 40.71, -74.01}, {"Buffalo", 42.89, -78.88}, {"Albany", 42.65, -73.75}, {"Syracuse", 43.05, -76.15}},
	"NC": {{"Charlotte", 35.23, -80.84}, {"Raleigh", 35.78, -78.64}, {"Asheville", 35.60, -82.55}},
	"ND": {{"Fargo", 46.88, -96.79}, {"Bismarck", 46.81, -100.78}, {"Grand Forks", 47.93, -97.03}},
	"OH": {{"Columbus", 39.96, -83.00}, {"Cleveland", 41.50, -81.69}, {"Cincinnati", 39.10, -84.51}},
	"OK": {{"Oklahoma City", 35.47, -97.52}, {"Tulsa", 36.15, -95.99}, {"Lawton", 34.60, -98.39}},
	"OR": {{"Portland", 45.52, -122.68}, {"Eugene", 44.05, -123.09}, {"Bend", 44.06, -121.31}},
	"PA": {{"Philadelphia", 39.95, -75.17}, {"Pittsburgh", 40.44, -80.00}, {"Harrisburg", 40.27, -76.88}},
	"RI": {{"Providence", 41.82, -71.41}, {"Warwick", 41.70, -71.42}},
	"SC": {{"Charleston", 32.78, -79.93}, {"Columbia", 34.00, -81.03}, {"Greenville", 34.85, -82.40}},
	"SD": {{"Sioux Falls", 43.55, -96.73}, {"Rapid City", 44.08, -103.23}, {"Aberdeen", 45.46, -98.49}},
	"TN": {{"Nashville", 36.16, -86.78}, {"Memphis", 35.15, -90.05}, {"Knoxville", 35.96, -83.92}},
	"TX": {{"Houston", 29.76, -95.37}, {"Dallas", 32.78, -96.80}, {"Austin", 30.27, -97.74}, {"San Antonio", 29.42, -98.49}},
	"UT": {{"Salt Lake City", 40.76, -111.89}, {"Provo", 40.23, -111.66}, {"St. George", 37.10, -113.58}},
	"VT": {{"Burlington", 44.48, -73.21}, {"Montpelier", 44.26, -72.58}, {"Rutland", 43.61, -72.97}},
	"VA": {{"Richmond", 37.54, -77.44}, {"Virginia Beach", 36.85, -75.98}, {"Roanoke", 37.27, -79.94}},
	"WA": {{"Seattle", 47.61, -122.33}, {"Spokane", 47.66, -117.43}, {"Tacoma", 47.25, -122.44}},
	"WV": {{"Charleston", 38.35, -81.63}, {"Huntington", 38.42, -82.45}, {"Morgantown", 39.63, -79.96}},
	"WI": {{"Milwaukee", 43.04, -87.91}, {"Madison", 43.07, -89.40}, {"Green Bay", 44.51, -88.02}},
	"WY": {{"Cheyenne", 41.14, -104.82}, {"Casper", 42.87, -106.31}, {"Laramie", 41.31, -105.59}},
}
