package mock

// Reporter keeps every reported message
type Reporter struct {
	Messages []string
}

// Error records message
func (r *Reporter) Error(message string) {
	r.Messages = append(r.Messages, message)
}
