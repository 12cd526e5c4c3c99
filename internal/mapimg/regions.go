package mapimg

// latLng is an approximate country center, good enough to place a highlight
// cluster on the dot grid.
type latLng struct {
	Lat float64
	Lng float64
}

// supportedRegions is the fixed whitelist of alpha-3 codes the map layer can
// highlight, mirroring the region set shipped with the upstream dotted-map
// geometry. Ranked countries outside this set are silently excluded from the
// highlighted layer only; they still appear in the list rendering.
var supportedRegions = map[string]latLng{
	"AFG": {33.9, 67.7},
	"AGO": {-11.2, 17.9},
	"ALB": {41.2, 20.2},
	"ARE": {23.4, 53.8},
	"ARG": {-38.4, -63.6},
	"ARM": {40.1, 45.0},
	"ATA": {-82.9, 135.0},
	"ATF": {-49.3, 69.3},
	"AUS": {-25.3, 133.8},
	"AUT": {47.5, 14.6},
	"AZE": {40.1, 47.6},
	"BDI": {-3.4, 29.9},
	"BEL": {50.5, 4.5},
	"BEN": {9.3, 2.3},
	"BFA": {12.2, -1.6},
	"BGD": {23.7, 90.4},
	"BGR": {42.7, 25.5},
	"BHS": {25.0, -77.4},
	"BIH": {43.9, 17.7},
	"BLR": {53.7, 27.9},
	"BLZ": {17.2, -88.5},
	"BMU": {32.3, -64.8},
	"BOL": {-16.3, -63.6},
	"BRA": {-14.2, -51.9},
	"BRN": {4.5, 114.7},
	"BTN": {27.5, 90.4},
	"BWA": {-22.3, 24.7},
	"CAF": {6.6, 20.9},
	"CAN": {56.1, -106.3},
	"CHE": {46.8, 8.2},
	"CHL": {-35.7, -71.5},
	"CHN": {35.9, 104.2},
	"CIV": {7.5, -5.5},
	"CMR": {7.4, 12.4},
	"COD": {-4.0, 21.8},
	"COG": {-0.2, 15.8},
	"COL": {4.6, -74.3},
	"CRI": {9.7, -83.8},
	"CUB": {21.5, -77.8},
	"CYP": {35.1, 33.4},
	"CZE": {49.8, 15.5},
	"DEU": {51.2, 10.5},
	"DJI": {11.8, 42.6},
	"DNK": {56.3, 9.5},
	"DOM": {18.7, -70.2},
	"DZA": {28.0, 1.7},
	"ECU": {-1.8, -78.2},
	"EGY": {26.8, 30.8},
	"ERI": {15.2, 39.8},
	"ESH": {24.2, -12.9},
	"ESP": {40.5, -3.7},
	"EST": {58.6, 25.0},
	"ETH": {9.1, 40.5},
	"FIN": {61.9, 25.7},
	"FJI": {-17.7, 178.1},
	"FLK": {-51.8, -59.5},
	"FRA": {46.2, 2.2},
	"GAB": {-0.8, 11.6},
	"GBR": {55.4, -3.4},
	"GEO": {42.3, 43.4},
	"GHA": {7.9, -1.0},
	"GIN": {9.9, -9.7},
	"GMB": {13.4, -15.3},
	"GNB": {11.8, -15.2},
	"GNQ": {1.7, 10.3},
	"GRC": {39.1, 21.8},
	"GRL": {71.7, -42.6},
	"GTM": {15.8, -90.2},
	"GUF": {4.0, -53.1},
	"GUY": {4.9, -58.9},
	"HND": {15.2, -86.2},
	"HRV": {45.1, 15.2},
	"HTI": {19.0, -72.3},
	"HUN": {47.2, 19.5},
	"IDN": {-0.8, 113.9},
	"IND": {20.6, 79.0},
	"IRL": {53.4, -8.2},
	"IRN": {32.4, 53.7},
	"IRQ": {33.2, 43.7},
	"ISL": {64.9, -19.0},
	"ISR": {31.0, 34.9},
	"ITA": {41.9, 12.6},
	"JAM": {18.1, -77.3},
	"JOR": {30.6, 36.2},
	"JPN": {36.2, 138.3},
	"KAZ": {48.0, 66.9},
	"KEN": {-0.0, 37.9},
	"KGZ": {41.2, 74.8},
	"KHM": {12.6, 105.0},
	"KOR": {35.9, 127.8},
	"KWT": {29.3, 47.5},
	"LAO": {19.9, 102.5},
	"LBN": {33.9, 35.9},
	"LBR": {6.4, -9.4},
	"LBY": {26.3, 17.2},
	"LKA": {7.9, 80.8},
	"LSO": {-29.6, 28.2},
	"LTU": {55.2, 23.9},
	"LUX": {49.8, 6.1},
	"LVA": {56.9, 24.6},
	"MAR": {31.8, -7.1},
	"MDA": {47.4, 28.4},
	"MDG": {-18.8, 46.9},
	"MEX": {23.6, -102.6},
	"MKD": {41.6, 21.7},
	"MLI": {17.6, -4.0},
	"MLT": {35.9, 14.4},
	"MMR": {21.9, 96.0},
	"MNE": {42.7, 19.4},
	"MNG": {46.9, 103.8},
	"MOZ": {-18.7, 35.5},
	"MRT": {21.0, -10.9},
	"MYS": {4.2, 102.0},
	"NAM": {-22.9, 18.5},
	"NCL": {-20.9, 165.6},
	"NER": {17.6, 8.1},
	"NGA": {9.1, 8.7},
	"NIC": {12.9, -85.2},
	"NLD": {52.1, 5.3},
	"NOR": {60.5, 8.5},
	"NPL": {28.4, 84.1},
	"NZL": {-40.9, 174.9},
	"OMN": {21.5, 55.9},
	"PAK": {30.4, 69.3},
	"PAN": {8.5, -80.8},
	"PER": {-9.2, -75.0},
	"PHL": {12.9, 121.8},
	"PNG": {-6.3, 143.9},
	"POL": {51.9, 19.1},
	"PRI": {18.2, -66.6},
	"PRK": {40.3, 127.5},
	"PRT": {39.4, -8.2},
	"PRY": {-23.4, -58.4},
	"PSE": {31.9, 35.2},
	"QAT": {25.4, 51.2},
	"ROU": {45.9, 25.0},
	"RUS": {61.5, 105.3},
	"RWA": {-1.9, 29.9},
	"SAU": {23.9, 45.1},
	"SDN": {12.9, 30.2},
	"SEN": {14.5, -14.5},
	"SLB": {-9.6, 160.2},
	"SLE": {8.5, -11.8},
	"SLV": {13.8, -88.9},
	"SOM": {5.2, 46.2},
	"SRB": {44.0, 21.0},
	"SSD": {6.9, 31.3},
	"SUR": {3.9, -56.0},
	"SVK": {48.7, 19.7},
	"SVN": {46.2, 15.0},
	"SWE": {60.1, 18.6},
	"SWZ": {-26.5, 31.5},
	"SYR": {34.8, 39.0},
	"TCD": {15.5, 18.7},
	"TGO": {8.6, 0.8},
	"THA": {15.9, 101.0},
	"TJK": {38.9, 71.3},
	"TKM": {38.9, 59.6},
	"TLS": {-8.9, 125.7},
	"TTO": {10.7, -61.2},
	"TUN": {33.9, 9.5},
	"TUR": {39.0, 35.2},
	"TWN": {23.7, 121.0},
	"TZA": {-6.4, 34.9},
	"UGA": {1.4, 32.3},
	"UKR": {48.4, 31.2},
	"URY": {-32.5, -55.8},
	"USA": {37.1, -95.7},
	"UZB": {41.4, 64.6},
	"VEN": {6.4, -66.6},
	"VNM": {14.1, 108.3},
	"VUT": {-15.4, 166.9},
	"YEM": {15.6, 48.5},
	"ZAF": {-30.6, 22.9},
	"ZMB": {-13.1, 27.8},
	"ZWE": {-19.0, 29.2},
}
