package pubchem

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ========================= PROPERTY TABLE =========================

// Properties is one record of a property table. A nil field means PubChem
// did not return that property for this compound.
type Properties struct {
	CID int `json:"CID"`

	MolecularFormula *string `json:"MolecularFormula,omitempty"`
	// Average molecular weight in g/mol, as the decimal string PubChem emits.
	MolecularWeight    *string `json:"MolecularWeight,omitempty"`
	CanonicalSMILES    *string `json:"CanonicalSMILES,omitempty"`
	IsomericSMILES     *string `json:"IsomericSMILES,omitempty"`
	ConnectivitySMILES *string `json:"ConnectivitySMILES,omitempty"`
	SMILES             *string `json:"SMILES,omitempty"`
	InChI              *string `json:"InChI,omitempty"`
	InChIKey           *string `json:"InChIKey,omitempty"`
	IUPACName          *string `json:"IUPACName,omitempty"`
	Title              *string `json:"Title,omitempty"`
	// Computed octanol-water partition coefficient.
	XLogP            *float64 `json:"XLogP,omitempty"`
	ExactMass        *string  `json:"ExactMass,omitempty"`
	MonoisotopicMass *string  `json:"MonoisotopicMass,omitempty"`
	// Topological polar surface area, in Å².
	TPSA       *float64 `json:"TPSA,omitempty"`
	Complexity *float64 `json:"Complexity,omitempty"`
	Charge     *int     `json:"Charge,omitempty"`

	HBondDonorCount          *int `json:"HBondDonorCount,omitempty"`
	HBondAcceptorCount       *int `json:"HBondAcceptorCount,omitempty"`
	RotatableBondCount       *int `json:"RotatableBondCount,omitempty"`
	HeavyAtomCount           *int `json:"HeavyAtomCount,omitempty"`
	IsotopeAtomCount         *int `json:"IsotopeAtomCount,omitempty"`
	AtomStereoCount          *int `json:"AtomStereoCount,omitempty"`
	DefinedAtomStereoCount   *int `json:"DefinedAtomStereoCount,omitempty"`
	UndefinedAtomStereoCount *int `json:"UndefinedAtomStereoCount,omitempty"`
	BondStereoCount          *int `json:"BondStereoCount,omitempty"`
	DefinedBondStereoCount   *int `json:"DefinedBondStereoCount,omitempty"`
	UndefinedBondStereoCount *int `json:"UndefinedBondStereoCount,omitempty"`
	CovalentUnitCount        *int `json:"CovalentUnitCount,omitempty"`

	// 3D descriptors of the default conformer.
	Volume3D                 *float64 `json:"Volume3D,omitempty"`
	XStericQuadrupole3D      *float64 `json:"XStericQuadrupole3D,omitempty"`
	YStericQuadrupole3D      *float64 `json:"YStericQuadrupole3D,omitempty"`
	ZStericQuadrupole3D      *float64 `json:"ZStericQuadrupole3D,omitempty"`
	FeatureCount3D           *int     `json:"FeatureCount3D,omitempty"`
	FeatureAcceptorCount3D   *int     `json:"FeatureAcceptorCount3D,omitempty"`
	FeatureDonorCount3D      *int     `json:"FeatureDonorCount3D,omitempty"`
	FeatureAnionCount3D      *int     `json:"FeatureAnionCount3D,omitempty"`
	FeatureCationCount3D     *int     `json:"FeatureCationCount3D,omitempty"`
	FeatureRingCount3D       *int     `json:"FeatureRingCount3D,omitempty"`
	FeatureHydrophobeCount3D *int     `json:"FeatureHydrophobeCount3D,omitempty"`
	ConformerModelRMSD3D     *float64 `json:"ConformerModelRMSD3D,omitempty"`
	EffectiveRotorCount3D    *float64 `json:"EffectiveRotorCount3D,omitempty"`
	ConformerCount3D         *int     `json:"ConformerCount3D,omitempty"`
	// Base64-encoded PubChem substructure fingerprint.
	Fingerprint2D *string `json:"Fingerprint2D,omitempty"`
}

// propertyFields maps a property name to its field index in Properties.
var propertyFields = func() map[CompoundProperty]int {
	fields := make(map[CompoundProperty]int)
	t := reflect.TypeOf(Properties{})
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "CID" {
			continue
		}
		fields[CompoundProperty(name)] = i
	}
	return fields
}()

// Value returns the value of p, dereferenced, and whether it was present.
func (p Properties) Value(prop CompoundProperty) (any, bool) {
	idx, ok := propertyFields[prop]
	if !ok {
		return nil, false
	}
	field := reflect.ValueOf(p).Field(idx)
	if field.IsNil() {
		return nil, false
	}
	return field.Elem().Interface(), true
}

// Text returns the value of prop formatted as text, or "" when absent.
func (p Properties) Text(prop CompoundProperty) string {
	v, ok := p.Value(prop)
	if !ok {
		return ""
	}
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func (p *Properties) set(prop CompoundProperty, raw string) error {
	idx, ok := propertyFields[prop]
	if !ok {
		return fmt.Errorf("unknown column %q", prop)
	}
	field := reflect.ValueOf(p).Elem().Field(idx)
	ptr := reflect.New(field.Type().Elem())
	switch ptr.Elem().Kind() {
	case reflect.String:
		ptr.Elem().SetString(raw)
	case reflect.Int:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("column %q: %w", prop, err)
		}
		ptr.Elem().SetInt(n)
	case reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("column %q: %w", prop, err)
		}
		ptr.Elem().SetFloat(f)
	}
	field.Set(ptr)
	return nil
}

// PropertyTable lists records in the order PubChem returned them.
// Nothing is merged or deduplicated.
type PropertyTable struct {
	Properties []Properties `json:"Properties"`
}

func (t PropertyTable) Len() int { return len(t.Properties) }

func (t PropertyTable) CIDs() []int {
	cids := make([]int, len(t.Properties))
	for i, p := range t.Properties {
		cids[i] = p.CID
	}
	return cids
}

// ByCID indexes the records by CID. When PubChem repeats a CID, the first
// record wins.
func (t PropertyTable) ByCID() map[int]Properties {
	out := make(map[int]Properties, len(t.Properties))
	for _, p := range t.Properties {
		if _, ok := out[p.CID]; !ok {
			out[p.CID] = p
		}
	}
	return out
}

// ParsePropertyTable decodes a `/property/.../JSON` response body.
func ParsePropertyTable(body []byte) (table PropertyTable, err error) {
	var envelope struct {
		PropertyTable *PropertyTable `json:"PropertyTable"`
	}
	if err = json.Unmarshal(body, &envelope); err != nil {
		return table, &ParseError{Format: FormatJSON, Err: err}
	}
	if envelope.PropertyTable == nil {
		return table, &ParseError{Format: FormatJSON, Err: errors.New("missing `PropertyTable`")}
	}
	return *envelope.PropertyTable, nil
}

// ParsePropertyTableCSV decodes a `/property/.../CSV` response body. The
// header row names the columns; the first one must be CID.
func ParsePropertyTableCSV(body []byte) (table PropertyTable, err error) {
	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		return table, &ParseError{Format: FormatCSV, Err: err}
	}
	if len(records) == 0 || len(records[0]) == 0 || records[0][0] != "CID" {
		return table, &ParseError{Format: FormatCSV, Err: errors.New("missing `CID` header")}
	}

	header := records[0]
	for _, row := range records[1:] {
		var p Properties
		if p.CID, err = strconv.Atoi(row[0]); err != nil {
			return PropertyTable{}, &ParseError{Format: FormatCSV, Err: fmt.Errorf("column \"CID\": %w", err)}
		}
		for i := 1; i < len(header) && i < len(row); i++ {
			if row[i] == "" {
				continue
			}
			if err = p.set(CompoundProperty(header[i]), row[i]); err != nil {
				return PropertyTable{}, &ParseError{Format: FormatCSV, Err: err}
			}
		}
		table.Properties = append(table.Properties, p)
	}
	return table, nil
}

// ========================= TEXT =========================

// ParseText splits a TXT response into its non-empty lines.
func ParseText(body []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(body), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ========================= INFORMATION LISTS =========================

// Information is one record of an `InformationList` response, as returned
// by the synonyms, sids and aids operations.
type Information struct {
	CID      int      `json:"CID"`
	Synonyms []string `json:"Synonym,omitempty"`
	SIDs     []int    `json:"SID,omitempty"`
	AIDs     []int    `json:"AID,omitempty"`
}

type InformationList struct {
	Information []Information `json:"Information"`
}

func ParseInformationList(body []byte) (list InformationList, err error) {
	var envelope struct {
		InformationList *InformationList `json:"InformationList"`
	}
	if err = json.Unmarshal(body, &envelope); err != nil {
		return list, &ParseError{Format: FormatJSON, Err: err}
	}
	if envelope.InformationList == nil {
		return list, &ParseError{Format: FormatJSON, Err: errors.New("missing `InformationList`")}
	}
	return *envelope.InformationList, nil
}

type IdentifierList struct {
	CIDs []int `json:"CID"`
}

func ParseIdentifierList(body []byte) (list IdentifierList, err error) {
	var envelope struct {
		IdentifierList *IdentifierList `json:"IdentifierList"`
	}
	if err = json.Unmarshal(body, &envelope); err != nil {
		return list, &ParseError{Format: FormatJSON, Err: err}
	}
	if envelope.IdentifierList == nil {
		return list, &ParseError{Format: FormatJSON, Err: errors.New("missing `IdentifierList`")}
	}
	return *envelope.IdentifierList, nil
}

// parseFault decodes a `{"Fault": {...}}` error body, if there is one.
func parseFault(body []byte) *Fault {
	var envelope struct {
		Fault *Fault `json:"Fault"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}
	return envelope.Fault
}
