package pubchem

var httpStatusMap = map[int]string{
	400: "Bad Request. \n" +
		"Request is improperly formed (syntax error in the URL, " +
		"unknown namespace or property, malformed identifier).",
	404: "Not Found. The input record was not found " +
		"(e.g. invalid CID, or a name with no match).",
	405: "Not Allowed. Request not allowed " +
		"(such as invalid MIME type in the HTTP Accept header).",
	500: "Server Error. Some problem on the server side " +
		"(such as a database server down, etc.)",
	501: "Unimplemented. The requested operation has not (yet) been implemented by the server",
	503: "Server Busy. Too many requests or server is busy, retry later.\n" +
		"PubChem asks for no more than 5 requests per second.",
	504: "Timeout. The request timed out, from server overload or too broad a request",
}
