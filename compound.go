package pubchem

import (
	"context"
	"fmt"

	"golang.org/x/exp/constraints"
	"k8s.io/apimachinery/pkg/util/sets"
)

// ========================= COMPOUND =========================

// Compound is a handle on a single identifier. It holds no data: every
// accessor issues one fresh request.
type Compound struct {
	client *Client
	id     Identifier
}

// Compound validates id and binds it to the client.
func (c *Client) Compound(id Identifier) (*Compound, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Compound{client: c, id: id}, nil
}

func (c *Client) NewCompound(cid int) (*Compound, error) {
	return c.Compound(CID(cid))
}

func (c *Client) WithName(name string) (*Compound, error) {
	return c.Compound(Name(name))
}

func (c *Client) WithInChI(inchi string) (*Compound, error) {
	return c.Compound(InChI(inchi))
}

func (c *Client) WithInChIKey(key string) (*Compound, error) {
	return c.Compound(InChIKey(key))
}

func (c *Client) WithSMILES(smiles string) (*Compound, error) {
	return c.Compound(SMILES(smiles))
}

func (cmpd *Compound) Identifier() Identifier { return cmpd.id }

func (cmpd *Compound) request() *RequestBuilder {
	return NewRequestBuilder().SetIdentifier(cmpd.id)
}

// Properties retrieves several properties in a single request. A name can
// match several compounds, hence the table.
func (cmpd *Compound) Properties(ctx context.Context, props ...CompoundProperty) (PropertyTable, error) {
	req, err := cmpd.request().SetProperties(props...).Build()
	if err != nil {
		return PropertyTable{}, err
	}
	return fetchAs(ctx, cmpd.client, req, ParsePropertyTable)
}

// Text retrieves one property through the plain-text shortcut. ErrNotFound
// is returned when PubChem answers with an empty body.
func (cmpd *Compound) Text(ctx context.Context, prop CompoundProperty) (string, error) {
	req, err := cmpd.request().SetProperties(prop).SetFormat(FormatTXT).Build()
	if err != nil {
		return "", err
	}
	body, err := cmpd.client.Fetch(ctx, req)
	if err != nil {
		return "", err
	}
	lines := ParseText(body)
	if len(lines) == 0 {
		return "", fmt.Errorf("%w: %s has no %s", ErrNotFound, cmpd.id, prop)
	}
	return lines[0], nil
}

// Title is the name used on the compound summary page.
func (cmpd *Compound) Title(ctx context.Context) (string, error) {
	return cmpd.Text(ctx, Title)
}

// first fetches a single JSON property and returns it from the first record.
// fallback is read when prop is absent, for properties PubChem renamed.
func (cmpd *Compound) first(ctx context.Context, prop, fallback CompoundProperty) (string, error) {
	table, err := cmpd.Properties(ctx, prop)
	if err != nil {
		return "", err
	}
	if table.Len() == 0 {
		return "", fmt.Errorf("%w: no record for %s", ErrNotFound, cmpd.id)
	}
	rec := table.Properties[0]
	if _, ok := rec.Value(prop); ok {
		return rec.Text(prop), nil
	}
	if _, ok := rec.Value(fallback); fallback != "" && ok {
		return rec.Text(fallback), nil
	}
	return "", fmt.Errorf("%w: %s has no %s", ErrNotFound, cmpd.id, prop)
}

func (cmpd *Compound) MolecularFormula(ctx context.Context) (string, error) {
	return cmpd.first(ctx, MolecularFormula, "")
}

func (cmpd *Compound) MolecularWeight(ctx context.Context) (string, error) {
	return cmpd.first(ctx, MolecularWeight, "")
}

func (cmpd *Compound) ExactMass(ctx context.Context) (string, error) {
	return cmpd.first(ctx, ExactMass, "")
}

// CanonicalSMILES also accepts the ConnectivitySMILES field PubChem now
// answers with.
func (cmpd *Compound) CanonicalSMILES(ctx context.Context) (string, error) {
	return cmpd.first(ctx, CanonicalSMILES, ConnectivitySMILES)
}

// IsomericSMILES also accepts the SMILES field PubChem now answers with.
func (cmpd *Compound) IsomericSMILES(ctx context.Context) (string, error) {
	return cmpd.first(ctx, IsomericSMILES, SMILESProperty)
}

func (cmpd *Compound) IUPACName(ctx context.Context) (string, error) {
	return cmpd.first(ctx, IUPACName, "")
}

func (cmpd *Compound) InChI(ctx context.Context) (string, error) {
	return cmpd.first(ctx, InChIProperty, "")
}

func (cmpd *Compound) InChIKey(ctx context.Context) (string, error) {
	return cmpd.first(ctx, InChIKeyProperty, "")
}

// Synonyms lists the names PubChem knows the compound by, most common first.
func (cmpd *Compound) Synonyms(ctx context.Context) ([]string, error) {
	list, err := cmpd.information(ctx, OperationSynonyms)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, info := range list.Information {
		out = append(out, info.Synonyms...)
	}
	return out, nil
}

// CIDs resolves the identifier to PubChem Compound IDs.
func (cmpd *Compound) CIDs(ctx context.Context) ([]int, error) {
	req, err := cmpd.request().SetOperation(OperationCIDs).Build()
	if err != nil {
		return nil, err
	}
	list, err := fetchAs(ctx, cmpd.client, req, ParseIdentifierList)
	if err != nil {
		return nil, err
	}
	return list.CIDs, nil
}

// SIDs lists the Substance IDs deposited for the compound.
func (cmpd *Compound) SIDs(ctx context.Context) ([]int, error) {
	list, err := cmpd.information(ctx, OperationSIDs)
	if err != nil {
		return nil, err
	}
	var out []int
	for _, info := range list.Information {
		out = append(out, info.SIDs...)
	}
	return out, nil
}

// AIDs lists the BioAssay IDs the compound was tested in.
func (cmpd *Compound) AIDs(ctx context.Context) ([]int, error) {
	list, err := cmpd.information(ctx, OperationAIDs)
	if err != nil {
		return nil, err
	}
	var out []int
	for _, info := range list.Information {
		out = append(out, info.AIDs...)
	}
	return out, nil
}

func (cmpd *Compound) information(ctx context.Context, op Operation) (InformationList, error) {
	req, err := cmpd.request().SetOperation(op).Build()
	if err != nil {
		return InformationList{}, err
	}
	return fetchAs(ctx, cmpd.client, req, ParseInformationList)
}

// ========================= COMPOUNDS =========================

// Compounds is a handle on an ordered list of CIDs, queried together.
type Compounds struct {
	client *Client
	cids   []int
}

// NewCompounds validates every CID up front; nothing is sent.
func NewCompounds[T constraints.Integer](c *Client, cids ...T) (*Compounds, error) {
	if len(cids) == 0 {
		return nil, fmt.Errorf("pubchem: no CID given")
	}
	out := &Compounds{client: c, cids: make([]int, len(cids))}
	for i, cid := range cids {
		out.cids[i] = int(cid)
		if err := CID(out.cids[i]).Validate(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (cs *Compounds) CIDs() []int {
	return append([]int(nil), cs.cids...)
}

func (cs *Compounds) request() *RequestBuilder {
	return NewRequestBuilder().SetCIDs(cs.cids...)
}

// Properties retrieves props for every CID in one request. CIDs PubChem
// does not know are missing from the table rather than reported as errors,
// and records for CIDs that were not asked for are dropped.
func (cs *Compounds) Properties(ctx context.Context, props ...CompoundProperty) (PropertyTable, error) {
	req, err := cs.request().SetProperties(props...).Build()
	if err != nil {
		return PropertyTable{}, err
	}
	table, err := fetchAs(ctx, cs.client, req, ParsePropertyTable)
	if err != nil {
		return PropertyTable{}, err
	}
	return cs.restrict(table), nil
}

// PropertiesCSV is Properties over the CSV output format.
func (cs *Compounds) PropertiesCSV(ctx context.Context, props ...CompoundProperty) (PropertyTable, error) {
	req, err := cs.request().SetProperties(props...).SetFormat(FormatCSV).Build()
	if err != nil {
		return PropertyTable{}, err
	}
	table, err := fetchAs(ctx, cs.client, req, ParsePropertyTableCSV)
	if err != nil {
		return PropertyTable{}, err
	}
	return cs.restrict(table), nil
}

// restrict keeps the records whose CID was requested, in upstream order.
func (cs *Compounds) restrict(table PropertyTable) PropertyTable {
	requested := sets.New(cs.cids...)
	kept := make([]Properties, 0, table.Len())
	for _, rec := range table.Properties {
		if requested.Has(rec.CID) {
			kept = append(kept, rec)
		}
	}
	return PropertyTable{Properties: kept}
}

// column fetches one property and indexes the present values by CID.
func (cs *Compounds) column(ctx context.Context, prop CompoundProperty) (map[int]string, error) {
	table, err := cs.Properties(ctx, prop)
	if err != nil {
		return nil, err
	}
	out := make(map[int]string, table.Len())
	for _, rec := range table.Properties {
		if _, ok := rec.Value(prop); ok {
			out[rec.CID] = rec.Text(prop)
		}
	}
	return out, nil
}

func (cs *Compounds) Titles(ctx context.Context) (map[int]string, error) {
	return cs.column(ctx, Title)
}

func (cs *Compounds) MolecularFormulas(ctx context.Context) (map[int]string, error) {
	return cs.column(ctx, MolecularFormula)
}

// SynonymList is the synonyms of one compound.
type SynonymList struct {
	CID      int
	Synonyms []string
}

func (cs *Compounds) Synonyms(ctx context.Context) ([]SynonymList, error) {
	req, err := cs.request().SetOperation(OperationSynonyms).Build()
	if err != nil {
		return nil, err
	}
	list, err := fetchAs(ctx, cs.client, req, ParseInformationList)
	if err != nil {
		return nil, err
	}
	requested := sets.New(cs.cids...)
	out := make([]SynonymList, 0, len(list.Information))
	for _, info := range list.Information {
		if requested.Has(info.CID) {
			out = append(out, SynonymList{CID: info.CID, Synonyms: info.Synonyms})
		}
	}
	return out, nil
}
