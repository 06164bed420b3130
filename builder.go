package pubchem

import (
	"fmt"
	"strings"
)

// Operation is the PUG REST operation applied to the input compounds.
type Operation string

const (
	OperationProperty Operation = "property"
	OperationSynonyms Operation = "synonyms"
	OperationCIDs     Operation = "cids"
	OperationSIDs     Operation = "sids"
	OperationAIDs     Operation = "aids"
)

// Format is the output suffix of a request path.
type Format string

const (
	FormatJSON Format = "JSON"
	FormatTXT  Format = "TXT"
	FormatCSV  Format = "CSV"
)

// Request is a validated PUG REST compound request. Build one with [RequestBuilder].
type Request struct {
	Identifiers []Identifier
	Operation   Operation
	Properties  []CompoundProperty
	Format      Format
}

// Path renders the request relative to the API base URL:
//
//	/compound/<namespace>/<id[,id...]>/<operation>[/<P1,P2,...>]/<FORMAT>
//
// A Request without identifiers renders as "". Use [RequestBuilder] to get a valid one.
func (r Request) Path() string {
	if len(r.Identifiers) == 0 {
		return ""
	}
	segments := make([]string, len(r.Identifiers))
	for i, id := range r.Identifiers {
		segments[i] = id.segment()
	}

	var b strings.Builder
	b.WriteString("/compound/")
	b.WriteString(string(r.Identifiers[0].namespace))
	b.WriteByte('/')
	b.WriteString(strings.Join(segments, ","))
	b.WriteByte('/')
	b.WriteString(string(r.Operation))
	if r.Operation == OperationProperty {
		names := make([]string, len(r.Properties))
		for i, p := range r.Properties {
			names[i] = string(p)
		}
		b.WriteByte('/')
		b.WriteString(strings.Join(names, ","))
	}
	b.WriteByte('/')
	b.WriteString(string(r.Format))
	return b.String()
}

func (r *Request) validate() error {
	if len(r.Identifiers) == 0 {
		return fmt.Errorf("pubchem: no identifier given")
	}
	ns := r.Identifiers[0].namespace
	for _, id := range r.Identifiers {
		if err := id.Validate(); err != nil {
			return err
		}
		if id.namespace != ns {
			return fmt.Errorf("pubchem: cannot mix `%s` and `%s` identifiers in one request", ns, id.namespace)
		}
	}
	if len(r.Identifiers) > 1 && ns != NamespaceCID {
		return fmt.Errorf("pubchem: only `cid` accepts a list of identifiers, got %d `%s` values", len(r.Identifiers), ns)
	}

	switch r.Format {
	case FormatJSON, FormatTXT:
	case FormatCSV:
		if r.Operation != OperationProperty {
			return fmt.Errorf("pubchem: `CSV` is only valid for property requests")
		}
	default:
		return fmt.Errorf("pubchem: unknown format `%s`", r.Format)
	}

	switch r.Operation {
	case OperationProperty:
		if len(r.Properties) == 0 {
			return ErrEmptyProperties
		}
		for _, p := range r.Properties {
			if !p.Known() {
				return fmt.Errorf("pubchem: unknown property `%s`", p)
			}
		}
		r.Properties = dedupe(r.Properties)
		if r.Format == FormatTXT && len(r.Properties) != 1 {
			return fmt.Errorf("pubchem: `TXT` takes exactly one property, got %d", len(r.Properties))
		}
	case OperationSynonyms, OperationCIDs, OperationSIDs, OperationAIDs:
		if len(r.Properties) != 0 {
			return fmt.Errorf("pubchem: `%s` does not take properties", r.Operation)
		}
	default:
		return fmt.Errorf("pubchem: unknown operation `%s`", r.Operation)
	}

	return nil
}

// ========================= BUILDER =========================

type RequestBuilder struct {
	req Request
}

// Usage:
//
//	builder := NewRequestBuilder()
//	builder.SetIdentifier(CID(2244)).SetProperties(Title, MolecularFormula)
//	req, err := builder.Build()
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{req: Request{
		Operation: OperationProperty,
		Format:    FormatJSON,
	}}
}

func (b *RequestBuilder) SetIdentifier(id Identifier) *RequestBuilder {
	b.req.Identifiers = []Identifier{id}
	return b
}

// SetCIDs replaces the identifiers with a list of CIDs, kept in the given order.
func (b *RequestBuilder) SetCIDs(cids ...int) *RequestBuilder {
	b.req.Identifiers = make([]Identifier, len(cids))
	for i, cid := range cids {
		b.req.Identifiers[i] = CID(cid)
	}
	return b
}

func (b *RequestBuilder) SetOperation(op Operation) *RequestBuilder {
	b.req.Operation = op
	return b
}

func (b *RequestBuilder) SetProperties(props ...CompoundProperty) *RequestBuilder {
	b.req.Properties = append([]CompoundProperty(nil), props...)
	return b
}

func (b *RequestBuilder) SetFormat(format Format) *RequestBuilder {
	b.req.Format = format
	return b
}

// Build validates the request. Nothing has been sent when it fails.
func (b *RequestBuilder) Build() (req Request, err error) {
	req = b.req
	req.Identifiers = append([]Identifier(nil), b.req.Identifiers...)
	req.Properties = append([]CompoundProperty(nil), b.req.Properties...)
	err = req.validate()
	return
}
