package service

import "context"

// CustomerResolver maps an email to the processor-side customer id,
// creating the customer when none exists.
type CustomerResolver struct {
	Gateway Gateway
}

func NewCustomerResolver(gateway Gateway) *CustomerResolver {
	return &CustomerResolver{Gateway: gateway}
}

// Find looks up the customer id for an email. Absence is reported
// through the found flag, not an error; errors are reserved for
// transport and upstream failures.
func (r *CustomerResolver) Find(ctx context.Context, email string) (string, bool, error) {
	customers, err := r.Gateway.SearchCustomers(ctx, email)
	if err != nil {
		return "", false, &ResolutionError{Email: email, Err: err}
	}
	if len(customers) == 0 {
		return "", false, nil
	}

	// The processor decides the result order; the first match wins.
	return customers[0].ID, true, nil
}

// Resolve returns the customer id for an email, creating the customer
// when the search comes back empty.
//
// Search-then-create is not atomic against the processor: two
// concurrent requests for the same new email can both reach the create
// call, and the second surfaces the processor's conflict as a
// ResolutionError. No retry or dedup is attempted here.
func (r *CustomerResolver) Resolve(ctx context.Context, email string) (string, error) {
	id, found, err := r.Find(ctx, email)
	if err != nil {
		return "", err
	}
	if found {
		return id, nil
	}

	customer, err := r.Gateway.CreateCustomer(ctx, email)
	if err != nil {
		return "", &ResolutionError{Email: email, Err: err}
	}

	return customer.ID, nil
}
