package classify

// Static lookup tables. They are read-only after package init.

// disciplineToSport maps compound discipline labels to the sport they are
// reported under. Labels not listed here are already sport names.
var disciplineToSport = map[string]string{
	// Aquatics: keep each sub-discipline separate
	"Swimming (Aquatics)":          "Swimming",
	"Diving (Aquatics)":            "Diving",
	"Water Polo (Aquatics)":        "Water Polo",
	"Artistic Swimming (Aquatics)": "Artistic Swimming",
	"Marathon Swimming (Aquatics)": "Marathon Swimming",
	// Skating: keep separate
	"Speed Skating (Skating)":             "Speed Skating",
	"Figure Skating (Skating)":            "Figure Skating",
	"Short Track Speed Skating (Skating)": "Short Track Speed Skating",
	// Skiing: keep separate
	"Alpine Skiing (Skiing)":        "Alpine Skiing",
	"Cross Country Skiing (Skiing)": "Cross Country Skiing",
	"Freestyle Skiing (Skiing)":     "Freestyle Skiing",
	"Ski Jumping (Skiing)":          "Ski Jumping",
	"Nordic Combined (Skiing)":      "Nordic Combined",
	"Snowboarding (Skiing)":         "Snowboarding",
	"Military Ski Patrol (Skiing)":  "Military Ski Patrol",
	// Bobsleigh: Skeleton is separate
	"Bobsleigh (Bobsleigh)": "Bobsleigh",
	"Skeleton (Bobsleigh)":  "Skeleton",
	// Volleyball: Beach Volleyball is separate
	"Volleyball (Volleyball)":       "Volleyball",
	"Beach Volleyball (Volleyball)": "Beach Volleyball",
	// Baseball / Softball: separate
	"Baseball (Baseball/Softball)": "Baseball",
	"Softball (Baseball/Softball)": "Softball",
	// Roller Sports: separate
	"Roller Skating (Roller Sports)": "Roller Skating",
	"Skateboarding (Roller Sports)":  "Skateboarding",
	// Gymnastics: group into one
	"Artistic Gymnastics (Gymnastics)": "Gymnastics",
	"Rhythmic Gymnastics (Gymnastics)": "Gymnastics",
	"Trampolining (Gymnastics)":        "Gymnastics",
	// Cycling: group into one
	"Cycling BMX Freestyle (Cycling)": "Cycling",
	"Cycling BMX Racing (Cycling)":    "Cycling",
	"Cycling Mountain Bike (Cycling)": "Cycling",
	"Cycling Road (Cycling)":          "Cycling",
	"Cycling Track (Cycling)":         "Cycling",
	// Canoeing: group into one
	"Canoe Marathon (Canoeing)": "Canoeing",
	"Canoe Slalom (Canoeing)":   "Canoeing",
	"Canoe Sprint (Canoeing)":   "Canoeing",
	// Equestrian: group into one
	"Equestrian Dressage (Equestrian)": "Equestrian",
	"Equestrian Driving (Equestrian)":  "Equestrian",
	"Equestrian Eventing (Equestrian)": "Equestrian",
	"Equestrian Jumping (Equestrian)":  "Equestrian",
	"Equestrian Vaulting (Equestrian)": "Equestrian",
	// Basketball: group
	"Basketball (Basketball)":     "Basketball",
	"3x3 Basketball (Basketball)": "Basketball",
	// Rugby: group
	"Rugby (Rugby)":        "Rugby",
	"Rugby Sevens (Rugby)": "Rugby",
	// Football: strip parent
	"Football (Football)": "Football",
	// Ice Hockey: group
	"Ice Hockey (Ice Hockey)":        "Ice Hockey",
	"3-on-3 Ice Hockey (Ice Hockey)": "Ice Hockey",
	// Hockey → Field Hockey (to distinguish from Ice Hockey)
	"Hockey":    "Field Hockey",
	"Hockey 5s": "Field Hockey",
}

// sportEmoji maps a sport to its pictogram.
var sportEmoji = map[string]string{
	"Athletics":                 "🏃",
	"Swimming":                  "🏊",
	"Diving":                    "🤿",
	"Water Polo":                "🤽",
	"Artistic Swimming":         "🤽",
	"Marathon Swimming":         "🏊",
	"Wrestling":                 "🤼",
	"Gymnastics":                "🤸",
	"Cycling":                   "🚴",
	"Rowing":                    "🚣",
	"Fencing":                   "🤺",
	"Boxing":                    "🥊",
	"Shooting":                  "🎯",
	"Sailing":                   "⛵",
	"Canoeing":                  "🛶",
	"Equestrian":                "🐎",
	"Weightlifting":             "🏋️",
	"Football":                  "⚽",
	"Field Hockey":              "🏑",
	"Basketball":                "🏀",
	"Volleyball":                "🏐",
	"Beach Volleyball":          "🏐",
	"Tennis":                    "🎾",
	"Table Tennis":              "🏓",
	"Handball":                  "🤾",
	"Judo":                      "🥋",
	"Taekwondo":                 "🥋",
	"Karate":                    "🥋",
	"Archery":                   "🏹",
	"Badminton":                 "🏸",
	"Rugby":                     "🏉",
	"Baseball":                  "⚾",
	"Softball":                  "🥎",
	"Modern Pentathlon":         "🏅",
	"Triathlon":                 "🏊",
	"Alpine Skiing":             "⛷️",
	"Cross Country Skiing":      "🎿",
	"Freestyle Skiing":          "⛷️",
	"Ski Jumping":               "🎿",
	"Nordic Combined":           "🎿",
	"Snowboarding":              "🏂",
	"Biathlon":                  "🎿",
	"Speed Skating":             "⛸️",
	"Figure Skating":            "⛸️",
	"Short Track Speed Skating": "⛸️",
	"Ice Hockey":                "🏒",
	"Bobsleigh":                 "🛷",
	"Luge":                      "🛷",
	"Skeleton":                  "🛷",
	"Curling":                   "🥌",
	"Golf":                      "⛳",
	"Surfing":                   "🏄",
	"Sport Climbing":            "🧗",
	"Skateboarding":             "🛹",
	"Ski Mountaineering":        "⛷️",
	"Tug-Of-War":                "🪢",
	"Lacrosse":                  "🥍",
	"Polo":                      "🐎",
	"Cricket":                   "🏏",
	"Croquet":                   "🏑",
	"Roller Skating":            "🛼",
	"Military Ski Patrol":       "🎿",
}

// countries maps a NOC code to its display name and ISO 3166 alpha-2
// region. Historical teams have no region.
var countries = map[string]country{
	"AFG": {name: "Afghanistan", region: "AF"},
	"AHO": {name: "Curaçao", region: "CW"},
	"ALG": {name: "Algeria", region: "DZ"},
	"AND": {name: "Andorra", region: "AD"},
	"ANZ": {name: "Australasia"},
	"ARG": {name: "Argentina", region: "AR"},
	"ARM": {name: "Armenia", region: "AM"},
	"AUS": {name: "Australia", region: "AU"},
	"AUT": {name: "Austria", region: "AT"},
	"AZE": {name: "Azerbaijan", region: "AZ"},
	"BAH": {name: "Bahamas", region: "BS"},
	"BAR": {name: "Barbados", region: "BB"},
	"BDI": {name: "Burundi", region: "BI"},
	"BEL": {name: "Belgium", region: "BE"},
	"BER": {name: "Bermuda", region: "BM"},
	"BIH": {name: "Bosnia and Herzegovina", region: "BA"},
	"BLR": {name: "Belarus", region: "BY"},
	"BOH": {name: "Bohemia"},
	"BOT": {name: "Botswana", region: "BW"},
	"BRA": {name: "Brazil", region: "BR"},
	"BRN": {name: "Bahrain", region: "BH"},
	"BUL": {name: "Bulgaria", region: "BG"},
	"BUR": {name: "Burkina Faso", region: "BF"},
	"CAN": {name: "Canada", region: "CA"},
	"CHI": {name: "Chile", region: "CL"},
	"CHN": {name: "China", region: "CN"},
	"CIV": {name: "Ivory Coast", region: "CI"},
	"CMR": {name: "Cameroon", region: "CM"},
	"COL": {name: "Colombia", region: "CO"},
	"CRC": {name: "Costa Rica", region: "CR"},
	"CRO": {name: "Croatia", region: "HR"},
	"CUB": {name: "Cuba", region: "CU"},
	"CYP": {name: "Cyprus", region: "CY"},
	"CZE": {name: "Czech Republic", region: "CZ"},
	"DEN": {name: "Denmark", region: "DK"},
	"DJI": {name: "Djibouti", region: "DJ"},
	"DOM": {name: "Dominican Republic", region: "DO"},
	"ECU": {name: "Ecuador", region: "EC"},
	"EGY": {name: "Egypt", region: "EG"},
	"ERI": {name: "Eritrea", region: "ER"},
	"ESA": {name: "El Salvador", region: "SV"},
	"ESP": {name: "Spain", region: "ES"},
	"EST": {name: "Estonia", region: "EE"},
	"ETH": {name: "Ethiopia", region: "ET"},
	"EUN": {name: "Unified Team"},
	"FIJ": {name: "Fiji", region: "FJ"},
	"FIN": {name: "Finland", region: "FI"},
	"FRA": {name: "France", region: "FR"},
	"FRG": {name: "West Germany"},
	"GAB": {name: "Gabon", region: "GA"},
	"GBR": {name: "United Kingdom", region: "GB"},
	"GDR": {name: "East Germany"},
	"GEO": {name: "Georgia", region: "GE"},
	"GER": {name: "Germany", region: "DE"},
	"GHA": {name: "Ghana", region: "GH"},
	"GRE": {name: "Greece", region: "GR"},
	"GRN": {name: "Grenada", region: "GD"},
	"GUA": {name: "Guatemala", region: "GT"},
	"GUY": {name: "Guyana", region: "GY"},
	"HAI": {name: "Haiti", region: "HT"},
	"HKG": {name: "Hong Kong", region: "HK"},
	"HUN": {name: "Hungary", region: "HU"},
	"INA": {name: "Indonesia", region: "ID"},
	"IND": {name: "India", region: "IN"},
	"IOA": {name: "Independent Olympic Athletes"},
	"IRI": {name: "Iran", region: "IR"},
	"IRL": {name: "Ireland", region: "IE"},
	"IRQ": {name: "Iraq", region: "IQ"},
	"ISL": {name: "Iceland", region: "IS"},
	"ISR": {name: "Israel", region: "IL"},
	"ISV": {name: "U.S. Virgin Islands", region: "VI"},
	"ITA": {name: "Italy", region: "IT"},
	"JAM": {name: "Jamaica", region: "JM"},
	"JOR": {name: "Jordan", region: "JO"},
	"JPN": {name: "Japan", region: "JP"},
	"KAZ": {name: "Kazakhstan", region: "KZ"},
	"KEN": {name: "Kenya", region: "KE"},
	"KGZ": {name: "Kyrgyzstan", region: "KG"},
	"KOR": {name: "South Korea", region: "KR"},
	"KOS": {name: "Kosovo", region: "XK"},
	"KSA": {name: "Saudi Arabia", region: "SA"},
	"KUW": {name: "Kuwait", region: "KW"},
	"LAT": {name: "Latvia", region: "LV"},
	"LBN": {name: "Lebanon", region: "LB"},
	"LIE": {name: "Liechtenstein", region: "LI"},
	"LTU": {name: "Lithuania", region: "LT"},
	"LUX": {name: "Luxembourg", region: "LU"},
	"MAR": {name: "Morocco", region: "MA"},
	"MAS": {name: "Malaysia", region: "MY"},
	"MDA": {name: "Moldova", region: "MD"},
	"MEX": {name: "Mexico", region: "MX"},
	"MGL": {name: "Mongolia", region: "MN"},
	"MKD": {name: "North Macedonia", region: "MK"},
	"MNE": {name: "Montenegro", region: "ME"},
	"MON": {name: "Monaco", region: "MC"},
	"MOZ": {name: "Mozambique", region: "MZ"},
	"MRI": {name: "Mauritius", region: "MU"},
	"NAM": {name: "Namibia", region: "NA"},
	"NED": {name: "Netherlands", region: "NL"},
	"NGR": {name: "Nigeria", region: "NG"},
	"NIG": {name: "Niger", region: "NE"},
	"NOR": {name: "Norway", region: "NO"},
	"NZL": {name: "New Zealand", region: "NZ"},
	"PAK": {name: "Pakistan", region: "PK"},
	"PAN": {name: "Panama", region: "PA"},
	"PAR": {name: "Paraguay", region: "PY"},
	"PER": {name: "Peru", region: "PE"},
	"PHI": {name: "Philippines", region: "PH"},
	"POL": {name: "Poland", region: "PL"},
	"POR": {name: "Portugal", region: "PT"},
	"PRK": {name: "North Korea", region: "KP"},
	"PUR": {name: "Puerto Rico", region: "PR"},
	"QAT": {name: "Qatar", region: "QA"},
	"ROC": {name: "Russian Olympic Committee", region: "RU"},
	"ROU": {name: "Romania", region: "RO"},
	"RSA": {name: "South Africa", region: "ZA"},
	"RUS": {name: "Russia", region: "RU"},
	"SAM": {name: "Samoa", region: "WS"},
	"SCG": {name: "Serbia and Montenegro"},
	"SEN": {name: "Senegal", region: "SN"},
	"SGP": {name: "Singapore", region: "SG"},
	"SLO": {name: "Slovenia", region: "SI"},
	"SMR": {name: "San Marino", region: "SM"},
	"SRB": {name: "Serbia", region: "RS"},
	"SRI": {name: "Sri Lanka", region: "LK"},
	"SUD": {name: "Sudan", region: "SD"},
	"SUI": {name: "Switzerland", region: "CH"},
	"SUR": {name: "Suriname", region: "SR"},
	"SVK": {name: "Slovakia", region: "SK"},
	"SWE": {name: "Sweden", region: "SE"},
	"SYR": {name: "Syria", region: "SY"},
	"TAN": {name: "Tanzania", region: "TZ"},
	"TCH": {name: "Czechoslovakia"},
	"TGA": {name: "Tonga", region: "TO"},
	"THA": {name: "Thailand", region: "TH"},
	"TJK": {name: "Tajikistan", region: "TJ"},
	"TKM": {name: "Turkmenistan", region: "TM"},
	"TOG": {name: "Togo", region: "TG"},
	"TPE": {name: "Chinese Taipei", region: "TW"},
	"TTO": {name: "Trinidad and Tobago", region: "TT"},
	"TUN": {name: "Tunisia", region: "TN"},
	"TUR": {name: "Turkey", region: "TR"},
	"UAE": {name: "United Arab Emirates", region: "AE"},
	"UAR": {name: "United Arab Republic"},
	"UGA": {name: "Uganda", region: "UG"},
	"UKR": {name: "Ukraine", region: "UA"},
	"URS": {name: "Soviet Union"},
	"URU": {name: "Uruguay", region: "UY"},
	"USA": {name: "United States", region: "US"},
	"UZB": {name: "Uzbekistan", region: "UZ"},
	"VEN": {name: "Venezuela", region: "VE"},
	"VIE": {name: "Vietnam", region: "VN"},
	"WIF": {name: "West Indies Federation"},
	"YUG": {name: "Yugoslavia"},
	"ZAM": {name: "Zambia", region: "ZM"},
	"ZIM": {name: "Zimbabwe", region: "ZW"},
}

// flagOverrides holds flags for NOCs whose region is absent or historical.
// Successor states get their flag; dissolved federations get the neutral one.
var flagOverrides = map[string]string{
	"ANZ": "🇦🇺",
	"BOH": "🇨🇿",
	"EUN": neutralFlag,
	"FRG": "🇩🇪",
	"GDR": "🇩🇪",
	"IOA": neutralFlag,
	"SCG": "🇷🇸",
	"TCH": "🇨🇿",
	"UAR": "🇸🇾",
	"URS": neutralFlag,
	"WIF": neutralFlag,
	"YUG": "🇷🇸",
}
