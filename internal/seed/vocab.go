package seed

// Vocabularies for synthetic record generation. Exact contents are a
// content decision; generation only promises the referential shape
// (orders point at real customers/products, tasks at real usernames).

var firstNames = []string{
	"Ada", "Brennan", "Carmen", "Dmitri", "Elena", "Farid",
	"Greta", "Hiro", "Ingrid", "Jonas", "Katya", "Luis",
	"Mara", "Nadia", "Omar", "Priya", "Quentin", "Rosa",
	"Sven", "Talia",
}

var lastNames = []string{
	"Almeida", "Bishop", "Carvalho", "Dunne", "Eriksen", "Fontaine",
	"Grieg", "Halvorsen", "Ibarra", "Jensen", "Kowalski", "Lindqvist",
	"Moreau", "Novak", "Okafor", "Petrov", "Quist", "Ramos",
	"Sandoval", "Tanaka",
}

var companies = []string{
	"Northwind Logistics", "Apex Manufacturing", "Bluewater Trading",
	"Cascade Analytics", "Dockside Imports", "Everline Media",
	"Foxglove Labs", "Granite Holdings", "Harbor & Finch",
	"Ironwood Supply", "Juniper Systems", "Kestrel Freight",
}

var departments = []string{
	"Engineering", "Sales", "Operations", "Finance", "Support", "Marketing",
}

var emailDomains = []string{
	"example.com", "example.org", "example.net",
}

var productAdjectives = []string{
	"Compact", "Industrial", "Portable", "Premium", "Rugged", "Standard",
}

var productNouns = []string{
	"Scanner", "Router", "Workstation", "Printer", "Display",
}

var productCategories = []string{
	"electronics", "office", "networking", "accessories",
}

var taskVerbs = []string{
	"Review", "Migrate", "Audit", "Document", "Refactor",
	"Deploy", "Investigate", "Update",
}

var taskSubjects = []string{
	"quarterly report", "customer onboarding flow", "billing pipeline",
	"inventory sync", "access policies", "backup schedule",
	"vendor contracts", "release checklist",
}

var taskTags = []string{
	"backend", "frontend", "ops", "finance", "urgent-review",
	"customer", "internal", "compliance",
}

var streets = []string{
	"14 Harbor Lane", "220 Mill Road", "7 Foundry Street",
	"91 Beacon Avenue", "3 Quay Terrace", "158 Orchard Way",
}

var cities = []string{
	"Portsmouth", "Galway", "Bergen", "Rotterdam", "Porto", "Gdansk",
}

var logModules = []string{
	"auth", "orders", "inventory", "billing", "reports", "scheduler",
}

var logMessages = []string{
	"request completed",
	"session refreshed",
	"record updated",
	"export generated",
	"retry scheduled",
	"threshold exceeded",
	"permission denied",
	"sync finished",
}

var rolePermissions = map[string][]string{
	"admin":    {"read", "write", "delete", "manage-users", "manage-settings"},
	"manager":  {"read", "write", "delete"},
	"employee": {"read", "write"},
	"viewer":   {"read"},
}
