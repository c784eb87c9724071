package models

// Customer is the processor-owned customer record. This service never
// stores it; every workflow run re-resolves it by email.
type Customer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CustomerSearchResult is the envelope returned by the processor's
// customer search endpoint.
type CustomerSearchResult struct {
	Results []Customer `json:"results"`
}
