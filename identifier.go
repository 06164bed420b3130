package pubchem

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Namespace is the PUG REST input namespace an [Identifier] lives in.
type Namespace string

const (
	NamespaceCID      Namespace = "cid"
	NamespaceName     Namespace = "name"
	NamespaceInChI    Namespace = "inchi"
	NamespaceInChIKey Namespace = "inchikey"
	NamespaceSMILES   Namespace = "smiles"
)

var namespaceSet = sets.New(
	NamespaceCID,
	NamespaceName,
	NamespaceInChI,
	NamespaceInChIKey,
	NamespaceSMILES,
)

// ParseNamespace accepts the lower-case namespace names used in the URL.
func ParseNamespace(s string) (Namespace, error) {
	ns := Namespace(strings.ToLower(strings.TrimSpace(s)))
	if !namespaceSet.Has(ns) {
		return "", &IdentifierError{Namespace: ns, Value: s, Reason: "unknown namespace"}
	}
	return ns, nil
}

var inchiKeyPattern = regexp.MustCompile(`^[A-Z]{14}-[A-Z]{10}-[A-Z]$`)

// Identifier is a single compound lookup key. The zero value is invalid.
type Identifier struct {
	namespace Namespace
	value     string
}

// CID identifies a compound by its PubChem Compound ID.
func CID(cid int) Identifier {
	return Identifier{namespace: NamespaceCID, value: strconv.Itoa(cid)}
}

// Name identifies a compound by one of its names or synonyms.
// A name may resolve to several CIDs.
func Name(name string) Identifier {
	return Identifier{namespace: NamespaceName, value: name}
}

func InChI(inchi string) Identifier {
	return Identifier{namespace: NamespaceInChI, value: inchi}
}

func InChIKey(key string) Identifier {
	return Identifier{namespace: NamespaceInChIKey, value: key}
}

func SMILES(smiles string) Identifier {
	return Identifier{namespace: NamespaceSMILES, value: smiles}
}

// NewIdentifier builds an Identifier from a namespace and its raw text form,
// as read from a command line or a config file.
func NewIdentifier(ns Namespace, value string) (Identifier, error) {
	id := Identifier{namespace: ns, value: value}
	if ns == NamespaceCID {
		cid, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return Identifier{}, &IdentifierError{Namespace: ns, Value: value, Reason: "not an integer"}
		}
		id = CID(cid)
	}
	return id, id.Validate()
}

func (id Identifier) Namespace() Namespace { return id.namespace }

func (id Identifier) Value() string { return id.value }

func (id Identifier) String() string {
	return string(id.namespace) + ":" + id.value
}

// Validate reports whether the identifier can be sent upstream.
func (id Identifier) Validate() error {
	if !namespaceSet.Has(id.namespace) {
		return &IdentifierError{Namespace: id.namespace, Value: id.value, Reason: "unknown namespace"}
	}
	if strings.TrimSpace(id.value) == "" {
		return &IdentifierError{Namespace: id.namespace, Value: id.value, Reason: "empty value"}
	}

	switch id.namespace {
	case NamespaceCID:
		cid, err := strconv.Atoi(id.value)
		if err != nil || cid <= 0 {
			return &IdentifierError{Namespace: id.namespace, Value: id.value, Reason: "CID must be a positive integer"}
		}
	case NamespaceInChI:
		if !strings.HasPrefix(id.value, "InChI=") {
			return &IdentifierError{Namespace: id.namespace, Value: id.value, Reason: "missing `InChI=` prefix"}
		}
	case NamespaceInChIKey:
		if !inchiKeyPattern.MatchString(id.value) {
			return &IdentifierError{Namespace: id.namespace, Value: id.value, Reason: "malformed InChIKey"}
		}
	}
	return nil
}

// segment is the identifier as it appears in a request path. '+' is
// escaped too, as PathEscape keeps it and SMILES charges use it.
func (id Identifier) segment() string {
	if id.namespace == NamespaceCID {
		return id.value
	}
	return strings.ReplaceAll(url.PathEscape(id.value), "+", "%2B")
}
