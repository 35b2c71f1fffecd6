package seed

type seedContact struct {
	name    string
	email   string
	phone   string
	company string
	title   string
	status  string
	source  string
}

type seedDeal struct {
	contactPos    int
	title         string
	value         float64
	stage         string
	probability   int
	expectedClose string
}

type seedActivity struct {
	contactPos  int
	dealPos     int
	typ         string
	subject     string
	description string
	date        string
	completed   bool
}

type seedIntelRow struct {
	companyName  string
	analysisType string
	content      string
}

var seedContacts = []seedContact{
	{"Alice Johnson", "alice@techcorp.com", "+1-555-0101", "TechCorp", "VP Engineering", "lead", "linkedin"},
	{"Bob Smith", "bob@startups.inc", "+1-555-0102", "Startups Inc", "CEO", "contacted", "referral"},
	{"Charlie Brown", "charlie@enterprise.global", "+1-555-0103", "Enterprise Global", "CTO", "proposal", "website"},
	{"Diana Prince", "diana@amazonia.net", "+1-555-0104", "Amazonia", "Head of Procurement", "negotiation", "cold_call"},
	{"Evan Wright", "evan@logistics.co", "+1-555-0105", "Logistics Co", "Operations Director", "lead", "website"},
	{"Fiona Green", "fiona@ecofriendly.org", "+1-555-0106", "EcoFriendly", "Sustainability Lead", "contacted", "referral"},
	{"George King", "george@royal.ltd", "+1-555-0107", "Royal Ltd", "Managing Director", "proposal", "linkedin"},
	{"Hannah White", "hannah@medical.care", "+1-555-0108", "Medical Care", "Administrator", "closed_won", "referral"},
	{"Ian Black", "ian@construction.works", "+1-555-0109", "Construction Works", "Project Manager", "lead", "cold_call"},
	{"Jane Doe", "jane@unknown.net", "+1-555-0110", "Unknown Net", "Founder", "closed_lost", "website"},
}

// contactPos refers to 1-based insertion position above, not a store id.
var seedDeals = []seedDeal{
	{1, "TechCorp Platform License", 45000.00, "qualified", 30, "2026-04-15"},
	{2, "Startups Inc Annual Plan", 12000.00, "proposal", 60, "2026-03-20"},
	{3, "Enterprise Global Migration", 150000.00, "negotiation", 75, "2026-03-01"},
	{4, "Amazonia Procurement Suite", 85000.00, "negotiation", 80, "2026-02-28"},
	{7, "Royal Ltd Consulting", 35000.00, "proposal", 50, "2026-04-01"},
	{8, "Medical Care Integration", 28000.00, "closed_won", 100, "2026-01-15"},
	{5, "Logistics Fleet Tracker", 52000.00, "qualified", 25, "2026-05-01"},
	{10, "Unknown Net Pilot", 8000.00, "closed_lost", 0, "2026-01-10"},
}

// dealPos 0 means the activity is not tied to a deal.
var seedActivities = []seedActivity{
	{1, 1, "call", "Discovery call", "Discussed platform needs. Evaluating 3 vendors.", "2026-02-10 10:00:00", true},
	{2, 2, "email", "Proposal sent", "Sent annual plan proposal with pricing.", "2026-02-11 14:30:00", true},
	{3, 3, "meeting", "Technical review", "CTO reviewed architecture. Positive on scalability.", "2026-02-12 09:00:00", true},
	{4, 4, "call", "Procurement check-in", "Budget approved. Waiting on legal.", "2026-02-13 11:00:00", true},
	{1, 0, "task", "Follow up with Alice", "Send case studies.", "2026-02-15 09:00:00", false},
	{5, 7, "email", "Introduction email", "Initial outreach about fleet tracking.", "2026-02-08 16:00:00", true},
	{6, 0, "note", "Research note", "EcoFriendly got Series B. Good time to re-engage.", "2026-02-13 08:00:00", true},
	{8, 6, "meeting", "Onboarding kickoff", "Kicked off implementation. 6-week timeline.", "2026-01-20 10:00:00", true},
}

var seedIntel = []seedIntelRow{
	{
		"TechCorp", "swot",
		"STRENGTHS: Strong engineering team, growing market share. WEAKNESSES: High burn rate. OPPORTUNITIES: Expanding to Europe. THREATS: Competitor X offering 20% discount.",
	},
	{
		"Enterprise Global", "competitor",
		"Evaluating three vendors including us. Primary concern: migration risk. Our advantage: better post-migration support and 99.9% uptime SLA.",
	},
}
