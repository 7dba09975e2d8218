package models

import "fmt"

// Named is a display name plus a short flavor description.
type Named struct {
	Name string
	Desc string
}

// LocationTypes classifies where the hero grows up.
var LocationTypes = map[string]Named{
	"village": {Name: "Village", Desc: "A small village: wood stoves, one school bus, everyone knows everyone."},
	"town":    {Name: "Provincial town", Desc: "A mid-sized town around a half-dead factory, five-story blocks and kiosks."},
	"capital": {Name: "Capital city", Desc: "A huge city of contrasts: street markets next to the first supermarkets."},
}

// Regions for villages and towns.
var Regions = map[string]Named{
	"central": {Name: "Central Russia", Desc: "fields, birch woods, a railway line to the oblast center"},
	"north":   {Name: "The North", Desc: "long winters, timber and mines, polar nights"},
	"south":   {Name: "The South", Desc: "orchards, markets loud with bargaining, hot dusty summers"},
	"siberia": {Name: "Siberia", Desc: "taiga all around, forty below in January, closed company towns"},
}

// Cities for the capital location type.
var Cities = map[string]struct {
	Name   string
	Region string
	Desc   string
}{
	"moscow":      {Name: "Moscow", Region: "central", Desc: "The capital itself: kiosk rows by the metro, currency exchanges, the whole decade at full volume."},
	"petersburg":  {Name: "Saint Petersburg", Region: "north", Desc: "Damp courtyards-wells, communal flats, rock clubs and crumbling imperial facades."},
	"novosibirsk": {Name: "Novosibirsk", Region: "siberia", Desc: "Science city turned flea market, engineers selling jeans out of checkered bags."},
}

// LocationInfo is the resolved, display-ready description of where the game
// takes place.
type LocationInfo struct {
	FullName string
	Desc     string
}

// Location resolves the state's location selector into display form. Unknown
// selectors fall back to generic labels rather than failing; saves from older
// versions may carry values the current tables no longer list.
func (s *GameState) Location() LocationInfo {
	if s.LocationType == "capital" {
		if city, ok := Cities[s.City]; ok {
			return LocationInfo{FullName: city.Name, Desc: city.Desc}
		}
		return LocationInfo{FullName: "Capital city", Desc: LocationTypes["capital"].Desc}
	}

	lt, okType := LocationTypes[s.LocationType]
	region, okRegion := Regions[s.Region]
	switch {
	case okType && okRegion:
		return LocationInfo{
			FullName: fmt.Sprintf("%s, %s", lt.Name, region.Name),
			Desc:     fmt.Sprintf("%s %s", lt.Desc, region.Desc),
		}
	case okType:
		return LocationInfo{FullName: lt.Name, Desc: lt.Desc}
	default:
		return LocationInfo{FullName: "Somewhere in the nineties", Desc: "An ordinary place in an extraordinary decade."}
	}
}
