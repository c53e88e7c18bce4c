package units

// conversionTable maps "{from}_to_{to}" unit-pair keys to multipliers.
// It backs conversions that are not covered by a category's own allowed
// units: energy, mass, distance, volume, area, transport work, time,
// pressure, waste, water, currency rates, grid losses, fuel densities,
// gas volumes, fuel calorific values and paper weights.
var conversionTable = map[string]float64{
	// Energy
	"MWh_to_kWh":   1000,
	"kWh_to_MWh":   0.001,
	"GJ_to_kWh":    277.778,
	"kWh_to_GJ":    0.0036,
	"TJ_to_GJ":     1000,
	"GJ_to_TJ":     0.001,
	"TJ_to_kWh":    277777.78,
	"kWh_to_TJ":    0.0000036,
	"therm_to_kWh": 29.31,
	"kWh_to_therm": 0.0341,
	"therm_to_GJ":  0.1055,
	"GJ_to_therm":  9.478,
	"toe_to_GJ":    41.868,
	"GJ_to_toe":    0.0239,
	"toe_to_kWh":   11630,
	"kWh_to_toe":   0.000086,
	"kcal_to_kWh":  0.001163,
	"kWh_to_kcal":  860.05,
	"MJ_to_kWh":    0.2778,
	"kWh_to_MJ":    3.6,
	"Btu_to_kWh":   0.000293,
	"kWh_to_Btu":   3412.14,

	// Mass
	"t_to_kg":      1000,
	"kg_to_t":      0.001,
	"g_to_kg":      0.001,
	"kg_to_g":      1000,
	"lb_to_kg":     0.453592,
	"kg_to_lb":     2.20462,
	"oz_to_kg":     0.0283495,
	"kg_to_oz":     35.274,
	"ton_UK_to_kg": 1016.05,
	"kg_to_ton_UK": 0.000984,
	"ton_US_to_kg": 907.185,
	"kg_to_ton_US": 0.00110231,
	"ton_UK_to_t":  1.01605,
	"t_to_ton_UK":  0.984207,
	"ton_US_to_t":  0.907185,
	"t_to_ton_US":  1.10231,

	// Distance
	"miles_to_km": 1.60934,
	"km_to_miles": 0.621371,
	"m_to_km":     0.001,
	"km_to_m":     1000,
	"ft_to_m":     0.3048,
	"m_to_ft":     3.28084,
	"in_to_m":     0.0254,
	"m_to_in":     39.3701,
	"nm_to_km":    1.852, // nautical miles
	"km_to_nm":    0.539957,
	"miles_to_m":  1609.34,
	"m_to_miles":  0.000621371,

	// Volume (liquid)
	"m³_to_L":     1000,
	"L_to_m³":     0.001,
	"gal_US_to_L": 3.78541,
	"L_to_gal_US": 0.264172,
	"gal_UK_to_L": 4.54609,
	"L_to_gal_UK": 0.219969,
	"gal_to_L":    3.78541, // defaults to US gallon
	"L_to_gal":    0.264172,
	"bbl_to_L":    158.987, // petroleum barrel
	"L_to_bbl":    0.00629,
	"ft³_to_L":    28.3168,
	"L_to_ft³":    0.0353147,
	"ft³_to_m³":   0.0283168,
	"m³_to_ft³":   35.3147,
	"ml_to_L":     0.001,
	"L_to_ml":     1000,

	// Area
	"hectare_to_m²":    10000,
	"m²_to_hectare":    0.0001,
	"acre_to_m²":       4046.86,
	"m²_to_acre":       0.000247105,
	"acre_to_hectare":  0.404686,
	"hectare_to_acre":  2.47105,
	"km²_to_m²":        1000000,
	"m²_to_km²":        0.000001,
	"km²_to_hectare":   100,
	"hectare_to_km²":   0.01,
	"ft²_to_m²":        0.092903,
	"m²_to_ft²":        10.7639,

	// Transport work
	"passenger_km_to_passenger_mile": 0.621371,
	"passenger_mile_to_passenger_km": 1.60934,
	"vehicle_km_to_vehicle_mile":     0.621371,
	"vehicle_mile_to_vehicle_km":     1.60934,
	"tonne_km_to_tonne_mile":         0.621371,
	"tonne_mile_to_tonne_km":         1.60934,
	"kg_km_to_kg_mile":               0.621371,
	"kg_mile_to_kg_km":               1.60934,

	// Time (for rates)
	"day_to_hour":  24,
	"hour_to_day":  0.0416667,
	"week_to_day":  7,
	"day_to_week":  0.142857,
	"year_to_day":  365.25,
	"day_to_year":  0.00273973,
	"month_to_day": 30,
	"day_to_month": 0.0328542,

	// Pressure (gas measurements)
	"bar_to_psi": 14.5038,
	"psi_to_bar": 0.0689476,
	"atm_to_bar": 1.01325,
	"bar_to_atm": 0.986923,
	"Pa_to_bar":  0.00001,
	"bar_to_Pa":  100000,

	// Temperature differences (not absolute temperatures)
	"degC_to_degF_diff": 1.8,
	"degF_to_degC_diff": 0.555556,
	"K_to_degC_diff":    1,
	"degC_to_K_diff":    1,

	// Waste
	"yd³_to_m³": 0.764555,
	"m³_to_yd³": 1.30795,
	"yd³_to_L":  764.555,
	"L_to_yd³":  0.00130795,

	// Water
	"kgal_to_L":  3785.41, // thousand US gallons
	"L_to_kgal":  0.000264172,
	"Mgal_to_L":  3785410, // million US gallons
	"L_to_Mgal":  0.000000264172,
	"kgal_to_m³": 3.78541,
	"m³_to_kgal": 0.264172,

	// Currency rates per unit (approximate EGP rates)
	"USD_per_kWh_to_EGP_per_kWh": 50,
	"EUR_per_kWh_to_EGP_per_kWh": 59,
	"GBP_per_kWh_to_EGP_per_kWh": 69,

	// Grid transmission and distribution losses (~8%)
	"kWh_delivered_to_kWh_generated": 1.08,
	"kWh_generated_to_kWh_delivered": 0.926,

	// Fuel densities (approximate)
	"L_diesel_to_kg": 0.85,
	"kg_to_L_diesel": 1.176,
	"L_petrol_to_kg": 0.75,
	"kg_to_L_petrol": 1.333,
	"L_LPG_to_kg":    0.55,
	"kg_to_L_LPG":    1.818,

	// Gas volumes at standard conditions
	"Nm³_to_m³": 1,
	"m³_to_Nm³": 1,
	"scf_to_m³": 0.0283168, // standard cubic feet
	"m³_to_scf": 35.3147,

	// Net calorific values (approximate)
	"L_diesel_to_kWh":        10,
	"kWh_to_L_diesel":        0.1,
	"L_petrol_to_kWh":        9,
	"kWh_to_L_petrol":        0.111,
	"kg_LPG_to_kWh":          12.8,
	"kWh_to_kg_LPG":          0.078,
	"kg_natural_gas_to_kWh":  13.5,
	"kWh_to_kg_natural_gas":  0.074,

	// Paper and materials
	"ream_to_kg":  2.5, // standard ream
	"kg_to_ream":  0.4,
	"sheet_to_kg": 0.005, // A4 sheet
	"kg_to_sheet": 200,
}

// GlobalConversion returns the multiplier converting from one unit into
// another via the global table. Returns (1, false) if no entry exists.
func GlobalConversion(from, to string) (float64, bool) {
	if m, ok := conversionTable[from+"_to_"+to]; ok {
		return m, true
	}
	return 1, false
}
