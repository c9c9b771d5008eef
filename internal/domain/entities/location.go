package entities

// LocationTree is the Province -> District -> Tehsil -> Area hierarchy
// served by the upstream /locations endpoint.
type LocationTree map[string]map[string]map[string][]string

// Provinces returns the top-level keys of the tree.
func (t LocationTree) Provinces() []string {
	out := make([]string, 0, len(t))
	for p := range t {
		out = append(out, p)
	}
	return out
}

// Districts returns the districts of a province, or nil when the province
// is unknown.
func (t LocationTree) Districts(province string) []string {
	districts, ok := t[province]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(districts))
	for d := range districts {
		out = append(out, d)
	}
	return out
}

// Tehsils returns the tehsils of a district, or nil when any level is
// unknown.
func (t LocationTree) Tehsils(province, district string) []string {
	districts, ok := t[province]
	if !ok {
		return nil
	}
	tehsils, ok := districts[district]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(tehsils))
	for th := range tehsils {
		out = append(out, th)
	}
	return out
}

// Areas returns the areas of a tehsil, or nil when any level is unknown.
func (t LocationTree) Areas(province, district, tehsil string) []string {
	districts, ok := t[province]
	if !ok {
		return nil
	}
	tehsils, ok := districts[district]
	if !ok {
		return nil
	}
	return tehsils[tehsil]
}

// LocationSelection is a cascading selection over the tree. Setting a level
// clears every level below it, mirroring the site's location selector.
type LocationSelection struct {
	Province string `json:"province"`
	District string `json:"district"`
	Tehsil   string `json:"tehsil"`
	Area     string `json:"area"`
}

// SetProvince selects a province and resets district, tehsil and area.
func (s *LocationSelection) SetProvince(province string) {
	s.Province = province
	s.District = ""
	s.Tehsil = ""
	s.Area = ""
}

// SetDistrict selects a district and resets tehsil and area.
func (s *LocationSelection) SetDistrict(district string) {
	s.District = district
	s.Tehsil = ""
	s.Area = ""
}

// SetTehsil selects a tehsil and resets area.
func (s *LocationSelection) SetTehsil(tehsil string) {
	s.Tehsil = tehsil
	s.Area = ""
}

// SetArea selects an area.
func (s *LocationSelection) SetArea(area string) {
	s.Area = area
}
