package models

// TopExhibit is a highlighted exhibit inside a museum.
type TopExhibit struct {
	Name        string `json:"name"`        // Exhibit name
	Description string `json:"description"` // Short description
}

// Museum represents a single museum from the static catalog.
// Loaded once at startup, never mutated.
type Museum struct {
	ID           int          `json:"id"`                // Unique museum id
	Name         string       `json:"name"`              // Museum name
	City         string       `json:"city"`              // City
	State        string       `json:"state"`             // State
	Description  string       `json:"description"`       // Free-text description
	Address      string       `json:"address"`           // Street address
	OpeningHours string       `json:"openingHours"`      // Opening hours text
	TicketPrice  string       `json:"ticketPrice"`       // Ticket price text
	Website      string       `json:"website,omitempty"` // Optional website URL
	TopExhibits  []TopExhibit `json:"topExhibits"`       // Ordered exhibit highlights
}
