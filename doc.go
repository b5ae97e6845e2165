// Package asaas is a client for the Asaas payment API.
//
// A Client groups the customer, payment and credit card resources behind one
// endpoint. Build one from any ports.Adapter with New, or let NewHTTP wire the
// shipped HTTP transport:
//
//	client, err := asaas.NewHTTP(asaas.HTTPConfig{
//	    Environment: asaas.Sandbox,
//	    APIKey:      os.Getenv("ASAAS_API_KEY"),
//	})
//	if err != nil {
//	    return err
//	}
//
//	customer, err := client.Customer().GetByID(ctx, "cus_000005219613")
//	switch {
//	case domain.IsNotFound(err):
//	    // no such customer
//	case err != nil:
//	    return err
//	}
//
// Every call makes a single request. Failures are reported as
// *domain.NotFoundError, *domain.APIError, *domain.TransportError or
// *domain.DecodeError; none are retried.
package asaas
