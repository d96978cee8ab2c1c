package domain

// DefaultMaxResults is the number of documents fetched when no limit is given.
const DefaultMaxResults = 10

// SearchOptions configures a search.
type SearchOptions struct {
	// MaxResults caps how many hits are resolved into documents.
	// Zero or negative selects DefaultMaxResults.
	MaxResults int
}

// EffectiveMaxResults returns MaxResults with the default applied.
func (o SearchOptions) EffectiveMaxResults() int {
	if o.MaxResults <= 0 {
		return DefaultMaxResults
	}
	return o.MaxResults
}

// SearchOutcome is the successful result of one search.
// Failures are reported as an error alongside a zero outcome.
type SearchOutcome struct {
	// Query is the query that was executed.
	Query string `json:"query"`

	// TotalResults is the hit count reported by the server.
	TotalResults int `json:"total_results"`

	// Documents holds the fetched documents in server order.
	Documents []Document `json:"documents"`
}

// NoResults reports whether the server found nothing for the query.
func (o SearchOutcome) NoResults() bool {
	return o.TotalResults == 0
}
