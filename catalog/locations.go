package catalog

// Location is one county/town pair the page layer generates a landing page
// for. The production tables run to thousands of rows; this is the sample
// the schema builders and tests work against.
type Location struct {
	Town   string `yaml:"town" json:"town"`
	County string `yaml:"county" json:"county"`
	Slug   string `yaml:"slug" json:"slug"`
}

// Locations returns the sample location table.
func Locations() []Location {
	return []Location{
		{Town: "Manchester", County: "Greater Manchester", Slug: "manchester"},
		{Town: "Leeds", County: "West Yorkshire", Slug: "leeds"},
		{Town: "Birmingham", County: "West Midlands", Slug: "birmingham"},
		{Town: "Bristol", County: "Bristol", Slug: "bristol"},
		{Town: "Norwich", County: "Norfolk", Slug: "norwich"},
		{Town: "Exeter", County: "Devon", Slug: "exeter"},
	}
}
