// Package resources implements the Asaas resource clients.
//
// Every resource method funnels its single transport call through invoke,
// which sends failures to Dispatch and successful bodies to the resource's
// translate function. Wire DTOs never leave this package: callers only see
// domain entities and domain errors.
package resources
