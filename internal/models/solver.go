package models

// Solver requests are forwarded to the remote AI solver verbatim; the core
// never interprets their contents.

type MCQSolveRequest struct {
	Question string            `json:"question"`
	Options  map[string]string `json:"options"`
	Context  *string           `json:"context,omitempty"`
}

type MCQSolveResponse struct {
	Answer      string  `json:"answer"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

type CodingSolveRequest struct {
	Problem     string  `json:"problem"`
	Language    string  `json:"language"`
	TestCases   *string `json:"test_cases,omitempty"`
	Constraints *string `json:"constraints,omitempty"`
}

type CodingSolveResponse struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

type FrontendSolveRequest struct {
	Requirements   string  `json:"requirements"`
	ReferenceImage *string `json:"reference_image,omitempty"`
}

type FrontendSolveResponse struct {
	HTML       string `json:"html"`
	CSS        string `json:"css"`
	JavaScript string `json:"javascript"`
}
