package eventlog

// OracleCall records one oracle request/response pair. Request/Response
// hold the already-JSON-serializable request args and full provider
// response, so consumers can replay exactly what was sent and received.
type OracleCall struct {
	Kind     string      `json:"kind"` // always "oracleCall"
	CallID   string      `json:"callId"`
	Task     string      `json:"task"` // "describe" | "evaluate" | "successors"
	Model    string      `json:"model"`
	Request  interface{} `json:"request"`
	Response interface{} `json:"response,omitempty"`
	Err      string      `json:"error,omitempty"`
}

// StateEvaluation records a leaf evaluation.
type StateEvaluation struct {
	Kind        string  `json:"kind"` // always "stateEvaluation"
	Depth       int     `json:"depth"`
	Value       float64 `json:"value"`
	UsedBudget  float64 `json:"usedBudget"`
	StateHash   string  `json:"stateHash"`
}

// MinimaxIter records one minimax node's resolution.
type MinimaxIter struct {
	Kind       string  `json:"kind"` // always "minimaxIter"
	Depth      int     `json:"depth"`
	Value      float64 `json:"value"`
	UsedBudget float64 `json:"usedBudget"`
	StateHash  string  `json:"stateHash"`
}
