package dto

// DeletedDTO is the body returned by every delete endpoint.
type DeletedDTO struct {
	OK bool `json:"ok"`
}

type MessageDTO struct {
	Message string `json:"message"`
}
