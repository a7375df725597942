// Package gamedata holds presentation metadata for game objects: display
// names and icons for structures, biomes, bookmark categories and job
// types. Biome display names can be refreshed from a minecraft-data
// checkout fetched by cmd/dmd.
package gamedata

// Info describes how a game object is presented to users.
type Info struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var structures = map[string]Info{
	"village":          {Name: "Village", Icon: "🏘️"},
	"pillager_outpost": {Name: "Pillager Outpost", Icon: "⚔️"},
	"ocean_monument":   {Name: "Ocean Monument", Icon: "🌊"},
	"woodland_mansion": {Name: "Woodland Mansion", Icon: "🏰"},
	"nether_fortress":  {Name: "Nether Fortress", Icon: "🔥"},
	"bastion_remnant":  {Name: "Bastion Remnant", Icon: "🏚️"},
	"igloo":            {Name: "Igloo", Icon: "🧊"},
	"witch_hut":        {Name: "Witch Hut", Icon: "🧙"},
	"shipwreck":        {Name: "Shipwreck", Icon: "🚢"},
	"buried_treasure":  {Name: "Buried Treasure", Icon: "💰"},
}

var biomes = map[string]Info{
	"plains":      {Name: "Plains", Icon: "🌾"},
	"forest":      {Name: "Forest", Icon: "🌲"},
	"desert":      {Name: "Desert", Icon: "🏜️"},
	"jungle":      {Name: "Jungle", Icon: "🌴"},
	"swamp":       {Name: "Swamp", Icon: "🐸"},
	"taiga":       {Name: "Taiga", Icon: "🌲"},
	"snowy_taiga": {Name: "Snowy Taiga", Icon: "❄️"},
	"ice_spikes":  {Name: "Ice Spikes", Icon: "🧊"},
	"mushroom":    {Name: "Mushroom Island", Icon: "🍄"},
	"mesa":        {Name: "Mesa", Icon: "🏔️"},
	"savanna":     {Name: "Savanna", Icon: "🦒"},
	"ocean":       {Name: "Ocean", Icon: "🌊"},
	"deep_ocean":  {Name: "Deep Ocean", Icon: "🌊"},
	"river":       {Name: "River", Icon: "🏞️"},
	"beach":       {Name: "Beach", Icon: "🏖️"},
	"mountain":    {Name: "Mountain", Icon: "⛰️"},
}

var categories = map[string]string{
	"base":      "🏠",
	"village":   "🏘️",
	"structure": "🏰",
	"resource":  "💎",
	"farm":      "🌾",
	"portal":    "🌀",
	"other":     "📍",
}

var dimensions = map[string]string{
	"overworld": "Overworld",
	"nether":    "The Nether",
	"end":       "The End",
}

// JobType describes a background job type for API consumers.
type JobType struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

var jobTypes = []JobType{
	{Type: "structures", Name: "Structure Map", Description: "Locate villages, monuments and other structures", Icon: "🗺️"},
	{Type: "nether", Name: "Nether Map", Description: "Locate fortresses and bastions in the nether", Icon: "🔥"},
	{Type: "biome", Name: "Biome Search", Description: "Find the nearest biome of a given type", Icon: "🌴"},
	{Type: "slime_map", Name: "Slime Map", Description: "Map slime chunks over a wide area", Icon: "🟢"},
}

// JobTypes returns the known job types in presentation order.
func JobTypes() []JobType {
	out := make([]JobType, len(jobTypes))
	copy(out, jobTypes)
	return out
}

// Structure returns display metadata for a structure kind name.
func Structure(name string) Info {
	if info, ok := structures[name]; ok {
		return info
	}
	return Info{Name: name, Icon: "📍"}
}

// Biome returns display metadata for a biome name.
func Biome(name string) Info {
	if info, ok := biomes[name]; ok {
		return info
	}
	return Info{Name: name, Icon: "📍"}
}

// CategoryIcon returns the icon for a bookmark category.
func CategoryIcon(category string) string {
	if icon, ok := categories[category]; ok {
		return icon
	}
	return "📍"
}

// DimensionName returns the display name of a dimension.
func DimensionName(dimension string) string {
	if name, ok := dimensions[dimension]; ok {
		return name
	}
	return dimension
}
