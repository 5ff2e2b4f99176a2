package common

// GetEventIDFromArgs extracts the target event identifier from request
// arguments. Returns the empty string when the tool takes no event_id or
// when the argument carries multiple identifiers.
func GetEventIDFromArgs(args map[string]interface{}) string {
	if id, ok := args["event_id"].(string); ok {
		return id
	}
	return ""
}
