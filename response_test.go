package pubchem

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestParsePropertyTable(t *testing.T) {
	table, err := ParsePropertyTable(readFixture("properties-bulk.json"))
	require.NoError(t, err)

	want := PropertyTable{Properties: []Properties{
		{CID: 2244, MolecularFormula: ptr("C9H8O4"), Title: ptr("Aspirin")},
		{CID: 5950, MolecularFormula: ptr("C3H7NO2")},
		{CID: 702, MolecularFormula: ptr("C2H6O"), Title: ptr("Ethanol")},
	}}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("ParsePropertyTable() mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePropertyTableTypes(t *testing.T) {
	body := []byte(`{"PropertyTable":{"Properties":[{
		"CID": 2244,
		"MolecularWeight": "180.16",
		"XLogP": 1.2,
		"Complexity": 212,
		"Charge": 0,
		"HBondDonorCount": 1
	}]}}`)
	table, err := ParsePropertyTable(body)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	rec := table.Properties[0]
	assert.Equal(t, "180.16", rec.Text(MolecularWeight))
	assert.Equal(t, "1.2", rec.Text(XLogP))
	assert.Equal(t, "212", rec.Text(Complexity))

	charge, ok := rec.Value(Charge)
	assert.True(t, ok, "zero is a value, not an absence")
	assert.Equal(t, 0, charge)

	_, ok = rec.Value(TPSA)
	assert.False(t, ok)
	assert.Empty(t, rec.Text(TPSA))
	_, ok = rec.Value("Smell")
	assert.False(t, ok)
}

func TestParsePropertyTableErrors(t *testing.T) {
	for name, body := range map[string]string{
		"not json":      `Status: 404`,
		"wrong shape":   `{"InformationList":{}}`,
		"wrong type":    `{"PropertyTable":{"Properties":[{"CID":"abc"}]}}`,
		"empty payload": ``,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePropertyTable([]byte(body))
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, FormatJSON, parseErr.Format)
		})
	}
}

func TestParsePropertyTableCSV(t *testing.T) {
	table, err := ParsePropertyTableCSV(readFixture("properties-bulk.csv"))
	require.NoError(t, err)

	want := PropertyTable{Properties: []Properties{
		{CID: 2244, MolecularFormula: ptr("C9H8O4"), MolecularWeight: ptr("180.16"), XLogP: ptr(1.2), HeavyAtomCount: ptr(13), Title: ptr("Aspirin")},
		{CID: 5950, MolecularFormula: ptr("C3H7NO2"), MolecularWeight: ptr("89.09"), XLogP: ptr(-3.0), HeavyAtomCount: ptr(6)},
	}}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("ParsePropertyTableCSV() mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePropertyTableCSVErrors(t *testing.T) {
	for name, body := range map[string]string{
		"no header":      ``,
		"no cid column":  "Title\nAspirin\n",
		"bad cid":        "CID,Title\nx,Aspirin\n",
		"unknown column": "CID,Smell\n1,sweet\n",
		"bad number":     "CID,Charge\n1,positive\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePropertyTableCSV([]byte(body))
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, FormatCSV, parseErr.Format)
		})
	}
}

func TestParseText(t *testing.T) {
	assert.Equal(t, []string{"Aspirin", "Ethanol"}, ParseText([]byte("Aspirin\r\n\nEthanol\n")))
	assert.Empty(t, ParseText([]byte("\n  \n")))
}

func TestParseInformationList(t *testing.T) {
	list, err := ParseInformationList(readFixture("synonyms-2244.json"))
	require.NoError(t, err)
	require.Len(t, list.Information, 1)
	assert.Equal(t, 2244, list.Information[0].CID)
	assert.Equal(t, "ACETYLSALICYLIC ACID", list.Information[0].Synonyms[1])

	_, err = ParseInformationList([]byte(`{"PropertyTable":{}}`))
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParseIdentifierList(t *testing.T) {
	list, err := ParseIdentifierList(readFixture("cids-aspirin.json"))
	require.NoError(t, err)
	assert.Equal(t, []int{2244}, list.CIDs)

	_, err = ParseIdentifierList([]byte(`[]`))
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParseFault(t *testing.T) {
	fault := parseFault(readFixture("fault-notfound.json"))
	require.NotNil(t, fault)
	assert.Equal(t, FaultNotFound, fault.Kind())
	assert.Equal(t, "No CID found", fault.Message)

	assert.Nil(t, parseFault([]byte("Status: 503")))
	assert.Equal(t, FaultUnknown, (&Fault{Code: "PUGREST.Other"}).Kind())
}
