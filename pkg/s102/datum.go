package s102

// Horizontal datum codes the product specification accepts: WGS84
// geographic, the two universal polar stereographic codes, and the full
// UTM zone sets north and south.
const (
	epsgWGS84         = 4326
	epsgUPSNorth      = 5041
	epsgUPSSouth      = 5042
	epsgUTMNorthFirst = 32601
	epsgUTMNorthLast  = 32660
	epsgUTMSouthFirst = 32701
	epsgUTMSouthLast  = 32760
)

// ValidateEPSG checks a horizontal datum code against the allowed set.
func ValidateEPSG(code int) error {
	if !validEPSG(code) {
		return &ErrInvalidDatumCode{Code: code}
	}
	return nil
}

func validEPSG(code int) bool {
	switch {
	case code == epsgWGS84, code == epsgUPSNorth, code == epsgUPSSouth:
		return true
	case code >= epsgUTMNorthFirst && code <= epsgUTMNorthLast:
		return true
	case code >= epsgUTMSouthFirst && code <= epsgUTMSouthLast:
		return true
	}
	return false
}

// ProjectedEPSG reports whether an allowed code names a projected system.
// Only the WGS84 geographic code is unprojected; projected grids use
// Easting/Northing axis names instead of Longitude/Latitude.
func ProjectedEPSG(code int) bool {
	return validEPSG(code) && code != epsgWGS84
}

// AxisNames returns the grid axis names for a horizontal datum code, X
// axis first.
func AxisNames(code int) []string {
	if ProjectedEPSG(code) {
		return []string{"Easting", "Northing"}
	}
	return []string{"Longitude", "Latitude"}
}
