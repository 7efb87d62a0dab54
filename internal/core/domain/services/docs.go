// Package services holds the domain rules that span more than one aggregate:
// dispatching an order to a branch and deciding who may confirm its delivery.
package services
