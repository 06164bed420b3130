package pubchem

import (
	"fmt"
	"strings"

	"github.com/antzucaro/matchr"
	"k8s.io/apimachinery/pkg/util/sets"
)

// CompoundProperty selects a field of the PUG REST property table.
// It carries no data itself.
type CompoundProperty string

const (
	MolecularFormula         CompoundProperty = "MolecularFormula"
	MolecularWeight          CompoundProperty = "MolecularWeight"
	CanonicalSMILES          CompoundProperty = "CanonicalSMILES"
	IsomericSMILES           CompoundProperty = "IsomericSMILES"
	ConnectivitySMILES       CompoundProperty = "ConnectivitySMILES"
	SMILESProperty           CompoundProperty = "SMILES"
	InChIProperty            CompoundProperty = "InChI"
	InChIKeyProperty         CompoundProperty = "InChIKey"
	IUPACName                CompoundProperty = "IUPACName"
	Title                    CompoundProperty = "Title"
	XLogP                    CompoundProperty = "XLogP"
	ExactMass                CompoundProperty = "ExactMass"
	MonoisotopicMass         CompoundProperty = "MonoisotopicMass"
	TPSA                     CompoundProperty = "TPSA"
	Complexity               CompoundProperty = "Complexity"
	Charge                   CompoundProperty = "Charge"
	HBondDonorCount          CompoundProperty = "HBondDonorCount"
	HBondAcceptorCount       CompoundProperty = "HBondAcceptorCount"
	RotatableBondCount       CompoundProperty = "RotatableBondCount"
	HeavyAtomCount           CompoundProperty = "HeavyAtomCount"
	IsotopeAtomCount         CompoundProperty = "IsotopeAtomCount"
	AtomStereoCount          CompoundProperty = "AtomStereoCount"
	DefinedAtomStereoCount   CompoundProperty = "DefinedAtomStereoCount"
	UndefinedAtomStereoCount CompoundProperty = "UndefinedAtomStereoCount"
	BondStereoCount          CompoundProperty = "BondStereoCount"
	DefinedBondStereoCount   CompoundProperty = "DefinedBondStereoCount"
	UndefinedBondStereoCount CompoundProperty = "UndefinedBondStereoCount"
	CovalentUnitCount        CompoundProperty = "CovalentUnitCount"
	Volume3D                 CompoundProperty = "Volume3D"
	XStericQuadrupole3D      CompoundProperty = "XStericQuadrupole3D"
	YStericQuadrupole3D      CompoundProperty = "YStericQuadrupole3D"
	ZStericQuadrupole3D      CompoundProperty = "ZStericQuadrupole3D"
	FeatureCount3D           CompoundProperty = "FeatureCount3D"
	FeatureAcceptorCount3D   CompoundProperty = "FeatureAcceptorCount3D"
	FeatureDonorCount3D      CompoundProperty = "FeatureDonorCount3D"
	FeatureAnionCount3D      CompoundProperty = "FeatureAnionCount3D"
	FeatureCationCount3D     CompoundProperty = "FeatureCationCount3D"
	FeatureRingCount3D       CompoundProperty = "FeatureRingCount3D"
	FeatureHydrophobeCount3D CompoundProperty = "FeatureHydrophobeCount3D"
	ConformerModelRMSD3D     CompoundProperty = "ConformerModelRMSD3D"
	EffectiveRotorCount3D    CompoundProperty = "EffectiveRotorCount3D"
	ConformerCount3D         CompoundProperty = "ConformerCount3D"
	Fingerprint2D            CompoundProperty = "Fingerprint2D"
)

var allProperties = []CompoundProperty{
	MolecularFormula, MolecularWeight,
	CanonicalSMILES, IsomericSMILES, ConnectivitySMILES, SMILESProperty,
	InChIProperty, InChIKeyProperty, IUPACName, Title,
	XLogP, ExactMass, MonoisotopicMass, TPSA, Complexity, Charge,
	HBondDonorCount, HBondAcceptorCount, RotatableBondCount,
	HeavyAtomCount, IsotopeAtomCount,
	AtomStereoCount, DefinedAtomStereoCount, UndefinedAtomStereoCount,
	BondStereoCount, DefinedBondStereoCount, UndefinedBondStereoCount,
	CovalentUnitCount,
	Volume3D, XStericQuadrupole3D, YStericQuadrupole3D, ZStericQuadrupole3D,
	FeatureCount3D, FeatureAcceptorCount3D, FeatureDonorCount3D,
	FeatureAnionCount3D, FeatureCationCount3D, FeatureRingCount3D,
	FeatureHydrophobeCount3D,
	ConformerModelRMSD3D, EffectiveRotorCount3D, ConformerCount3D,
	Fingerprint2D,
}

var propertySet = sets.New(allProperties...)

// AllProperties lists every known property in declaration order.
func AllProperties() []CompoundProperty {
	out := make([]CompoundProperty, len(allProperties))
	copy(out, allProperties)
	return out
}

func (p CompoundProperty) String() string { return string(p) }

// Known reports whether PUG REST accepts p in a property request.
func (p CompoundProperty) Known() bool {
	return propertySet.Has(p)
}

// ParseProperty resolves a property name case-insensitively. Unknown names
// produce an error suggesting the closest known property.
func ParseProperty(name string) (CompoundProperty, error) {
	name = strings.TrimSpace(name)
	for _, p := range allProperties {
		if strings.EqualFold(string(p), name) {
			return p, nil
		}
	}

	lower := strings.ToLower(name)
	best, bestDist := CompoundProperty(""), -1
	for _, p := range allProperties {
		d := matchr.Levenshtein(lower, strings.ToLower(string(p)))
		if bestDist < 0 || d < bestDist {
			best, bestDist = p, d
		}
	}
	if bestDist >= 0 && bestDist <= len(name)/2 {
		return "", fmt.Errorf("unknown property %q, did you mean %q?", name, best)
	}
	return "", fmt.Errorf("unknown property %q", name)
}

// ParseProperties splits a comma separated list, as accepted on the command line.
func ParseProperties(list string) ([]CompoundProperty, error) {
	var props []CompoundProperty
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		p, err := ParseProperty(name)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return props, nil
}

// dedupe keeps the first occurrence of each property, in caller order.
func dedupe(props []CompoundProperty) []CompoundProperty {
	seen := sets.New[CompoundProperty]()
	out := make([]CompoundProperty, 0, len(props))
	for _, p := range props {
		if seen.Has(p) {
			continue
		}
		seen.Insert(p)
		out = append(out, p)
	}
	return out
}
