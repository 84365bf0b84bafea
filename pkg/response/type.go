package response

// Resp is the JSON body of every non-2xx response.
type Resp struct {
	Message string `json:"message"`
}
