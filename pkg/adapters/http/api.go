package http

// AddRequest is the body of POST /api/add.
// Numbers is a pointer so a missing field can be told apart from "".
type AddRequest struct {
	Numbers *string `json:"numbers"`
}

// ErrorResponse is written for failures that never reach the calculator.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// InfoResponse is the body of GET /info.
type InfoResponse struct {
	App        string `json:"app"`
	Version    string `json:"version"`
	APIVersion string `json:"api_version"`
}

// RootResponse is the body of GET /.
type RootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
	Examples  map[string]string `json:"examples"`
}

// kindRequest marks errors in the request envelope itself.
const kindRequest = "request"
