// Package kernel holds the value objects shared by the order, branch and user models:
//   - UUID: identifier of orders
//   - InvoiceNumber: the external invoice key used to deduplicate pulled invoices
//
// Both are immutable and their zero values fail Validate.
package kernel
