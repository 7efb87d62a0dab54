package tangoconnect

import (
	"fmt"
	"strings"
	"time"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/ports"
)

// invoiceDateLayouts are tried in order; the first that parses wins.
var invoiceDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ToCandidate maps one pulled invoice to the data of a new order. It has no side effects.
func ToCandidate(inv Invoice) (ports.OrderCandidate, error) {
	number, err := kernel.NewInvoiceNumber(inv.NumeroFactura)
	if err != nil {
		return ports.OrderCandidate{}, err
	}

	date, err := parseInvoiceDate(inv.FechaFactura)
	if err != nil {
		return ports.OrderCandidate{}, fmt.Errorf("invoice %s: %w", number, err)
	}

	candidate := ports.OrderCandidate{
		Number:   number,
		Date:     date,
		Customer: strings.TrimSpace(inv.Cliente.RazonSocial),
		Address:  strings.TrimSpace(inv.Cliente.Direccion),
		Locality: strings.TrimSpace(inv.Cliente.Localidad),
	}
	if err := candidate.Validate(); err != nil {
		return ports.OrderCandidate{}, fmt.Errorf("invoice %s: %w", number, err)
	}

	return candidate, nil
}

func parseInvoiceDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range invoiceDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable invoice date %q", raw)
}
