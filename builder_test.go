package pubchem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestPath(t *testing.T) {
	tests := []struct {
		name    string
		builder *RequestBuilder
		want    string
	}{
		{
			name:    "single cid",
			builder: NewRequestBuilder().SetIdentifier(CID(2244)).SetProperties(Title, MolecularFormula),
			want:    "/compound/cid/2244/property/Title,MolecularFormula/JSON",
		},
		{
			name:    "cid list keeps order",
			builder: NewRequestBuilder().SetCIDs(5950, 2244, 702).SetProperties(MolecularFormula),
			want:    "/compound/cid/5950,2244,702/property/MolecularFormula/JSON",
		},
		{
			name:    "duplicates dropped in caller order",
			builder: NewRequestBuilder().SetIdentifier(CID(1)).SetProperties(XLogP, Title, XLogP, TPSA, Title),
			want:    "/compound/cid/1/property/XLogP,Title,TPSA/JSON",
		},
		{
			name:    "name is escaped",
			builder: NewRequestBuilder().SetIdentifier(Name("acetic acid, glacial")).SetProperties(Title),
			want:    "/compound/name/acetic%20acid%2C%20glacial/property/Title/JSON",
		},
		{
			name:    "smiles slashes and parens are escaped",
			builder: NewRequestBuilder().SetIdentifier(SMILES("CC(=O)OC1=CC=CC=C1C(=O)O")).SetProperties(Title),
			want:    "/compound/smiles/CC%28=O%29OC1=CC=CC=C1C%28=O%29O/property/Title/JSON",
		},
		{
			name:    "smiles charge is escaped",
			builder: NewRequestBuilder().SetIdentifier(SMILES("[NH4+]")).SetProperties(Title),
			want:    "/compound/smiles/%5BNH4%2B%5D/property/Title/JSON",
		},
		{
			name:    "inchikey verbatim",
			builder: NewRequestBuilder().SetIdentifier(InChIKey("BSYNRYMUTXBXSQ-UHFFFAOYSA-N")).SetProperties(Title),
			want:    "/compound/inchikey/BSYNRYMUTXBXSQ-UHFFFAOYSA-N/property/Title/JSON",
		},
		{
			name:    "text shortcut",
			builder: NewRequestBuilder().SetIdentifier(CID(2244)).SetProperties(Title).SetFormat(FormatTXT),
			want:    "/compound/cid/2244/property/Title/TXT",
		},
		{
			name:    "csv",
			builder: NewRequestBuilder().SetCIDs(1, 2).SetProperties(Title, Charge).SetFormat(FormatCSV),
			want:    "/compound/cid/1,2/property/Title,Charge/CSV",
		},
		{
			name:    "synonyms take no property segment",
			builder: NewRequestBuilder().SetIdentifier(Name("aspirin")).SetOperation(OperationSynonyms),
			want:    "/compound/name/aspirin/synonyms/JSON",
		},
		{
			name:    "cids as text",
			builder: NewRequestBuilder().SetIdentifier(Name("glucose")).SetOperation(OperationCIDs).SetFormat(FormatTXT),
			want:    "/compound/name/glucose/cids/TXT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tt.builder.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Path())
		})
	}
}

func TestRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		builder *RequestBuilder
		target  error
	}{
		{
			name:    "no identifier",
			builder: NewRequestBuilder().SetProperties(Title),
		},
		{
			name:    "empty properties",
			builder: NewRequestBuilder().SetIdentifier(CID(2244)),
			target:  ErrEmptyProperties,
		},
		{
			name:    "empty property list after explicit set",
			builder: NewRequestBuilder().SetCIDs(1, 2).SetProperties(),
			target:  ErrEmptyProperties,
		},
		{
			name:    "unknown property",
			builder: NewRequestBuilder().SetIdentifier(CID(2244)).SetProperties("Smell"),
		},
		{
			name:    "invalid cid",
			builder: NewRequestBuilder().SetCIDs(2244, 0).SetProperties(Title),
		},
		{
			name:    "several names",
			builder: &RequestBuilder{req: Request{Identifiers: []Identifier{Name("a"), Name("b")}, Operation: OperationSynonyms, Format: FormatJSON}},
		},
		{
			name:    "mixed namespaces",
			builder: &RequestBuilder{req: Request{Identifiers: []Identifier{CID(1), Name("b")}, Operation: OperationSynonyms, Format: FormatJSON}},
		},
		{
			name:    "csv synonyms",
			builder: NewRequestBuilder().SetIdentifier(CID(1)).SetOperation(OperationSynonyms).SetFormat(FormatCSV),
		},
		{
			name:    "text takes one property",
			builder: NewRequestBuilder().SetIdentifier(CID(1)).SetProperties(Title, Charge).SetFormat(FormatTXT),
		},
		{
			name:    "properties on cids",
			builder: NewRequestBuilder().SetIdentifier(Name("x")).SetOperation(OperationCIDs).SetProperties(Title),
		},
		{
			name:    "unknown operation",
			builder: NewRequestBuilder().SetIdentifier(CID(1)).SetOperation("record"),
		},
		{
			name:    "unknown format",
			builder: NewRequestBuilder().SetIdentifier(CID(1)).SetProperties(Title).SetFormat("XML"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestBuildDoesNotAliasBuilder(t *testing.T) {
	props := []CompoundProperty{Title, MolecularFormula}
	builder := NewRequestBuilder().SetIdentifier(CID(2244)).SetProperties(props...)
	req, err := builder.Build()
	require.NoError(t, err)

	props[0] = Charge
	builder.SetProperties(XLogP)
	assert.Equal(t, []CompoundProperty{Title, MolecularFormula}, req.Properties)
}

func TestZeroRequestPath(t *testing.T) {
	assert.Empty(t, Request{}.Path())
	assert.Empty(t, Request{Operation: OperationSynonyms, Format: FormatJSON}.Path())
}
