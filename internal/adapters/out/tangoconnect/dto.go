package tangoconnect

// tokenResponse is the OAuth2 token endpoint reply.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope"`
}

// Invoice is one record of the pending-delivery listing.
type Invoice struct {
	NumeroFactura string        `json:"NumeroFactura"`
	FechaFactura  string        `json:"FechaFactura"`
	Cliente       Customer      `json:"Cliente"`
	Items         []InvoiceItem `json:"Items"`
	Total         float64       `json:"Total"`
	Estado        string        `json:"Estado"`
}

type Customer struct {
	Codigo       string `json:"Codigo"`
	RazonSocial  string `json:"RazonSocial"`
	Direccion    string `json:"Direccion"`
	Localidad    string `json:"Localidad"`
	CodigoPostal string `json:"CodigoPostal"`
	Telefono     string `json:"Telefono"`
	Email        string `json:"Email"`
	CUIT         string `json:"CUIT"`
}

type InvoiceItem struct {
	Codigo         string  `json:"Codigo"`
	Descripcion    string  `json:"Descripcion"`
	Cantidad       float64 `json:"Cantidad"`
	PrecioUnitario float64 `json:"PrecioUnitario"`
	Total          float64 `json:"Total"`
}

// deliveredState is the invoice state reported after a confirmed delivery.
const deliveredState = "ENTREGADO"

type statusUpdateRequest struct {
	Estado       string `json:"estado"`
	DniReceptor  string `json:"dniReceptor"`
	FechaEntrega string `json:"fechaEntrega"`
}

// newInvoiceEvent is the webhook event fired for every new invoice.
const newInvoiceEvent = "factura.nueva"

type webhookRequest struct {
	Event       string `json:"event"`
	CallbackURL string `json:"callback_url"`
	Active      bool   `json:"active"`
}
