package responses

// EpicProxyResponse is the envelope returned by every patient endpoint:
// {"status": 200, "data": ...}. Data carries the remote response mapped to
// JSON for search/get and is always null for create.
type EpicProxyResponse struct {
	Status int         `json:"status"`
	Data   interface{} `json:"data"`
}
