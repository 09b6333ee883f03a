package config

// Application identity used in logs and the dashboard page title.
const (
	AppName = "Park Pulse"
	Version = "v1.0.0"
)

// ExportFileName is the download name offered for the record table.
const ExportFileName = "my_parkgolf_records.csv"

// ExportHeader is the column order of the exported record table.
var ExportHeader = []string{"date", "venue", "name", "score"}

// defaultScorecards are the four 2025 score cards this dashboard was
// built around. They are configuration, not a hard-coded lookup: a
// YAML config file replaces the list wholesale.
var defaultScorecards = []ScorecardFile{
	{Path: "점수카드_2025 - 양천생태파골.csv", Venue: "양천생태"},
	{Path: "점수카드_2025 - 소양강.csv", Venue: "소양강"},
	{Path: "점수카드_2025 - 산천어.csv", Venue: "화천 산천어"},
	{Path: "점수카드_2025 - 금천한내.csv", Venue: "금천 한내"},
}
