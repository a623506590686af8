package constant

// Event types published on the internal bus and exported to NATS.
const (
	EventRecommendationCreated = "RECOMMENDATION_CREATED"
	EventSessionStarted        = "SESSION_STARTED"
	EventCatalogImported       = "CATALOG_IMPORTED"
)

// Watermill topic carrying sales events inside the process.
const SalesEventsTopic = "SALES_EVENTS"

// Default customer type before any classification has happened.
const DefaultCustomerType = "Other"
