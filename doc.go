// pubchem: a client for the [PubChem PUG REST API].
//
// 2 ways to query compounds:
//   - Compound, one identifier (CID, name, InChI, InChIKey or SMILES)
//   - Compounds, a list of CIDs queried in a single request
//
// Instructions:
//
//  1. Construct a [Client] with [NewClient]. Options set the base URL,
//     the *http.Client, the timeout, the logger and the tracer provider.
//
//  2. Bind an identifier: [Client.NewCompound], [Client.WithName],
//     [Client.WithInChI], [Client.WithInChIKey], [Client.WithSMILES],
//     or [NewCompounds] for a list of CIDs.
//     Identifiers are validated here, before any request.
//
//  3. Call an accessor: [Compound.Title], [Compound.MolecularFormula],
//     [Compound.Synonyms], ..., or [Compound.Properties] /
//     [Compounds.Properties] for an arbitrary set of [CompoundProperty].
//
//     Every call is exactly one GET. Nothing is cached or retried, so calling
//     an accessor twice costs two requests.
//
//  4. Lower level: build a [Request] with [RequestBuilder], send it with
//     [Client.Fetch] and decode the body with [ParsePropertyTable],
//     [ParsePropertyTableCSV], [ParseText], [ParseInformationList] or
//     [ParseIdentifierList].
//
// Errors fall in three groups: [IdentifierError] (bad input, nothing sent),
// [RequestError] (transport failure or non-2xx status, see
// [ErrNotFound]) and [ParseError] (unexpected response shape).
//
// [PubChem PUG REST API]: https://pubchem.ncbi.nlm.nih.gov/docs/pug-rest
package pubchem
