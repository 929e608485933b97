package domain

// InterpreterCacheEntry records where an extra satisfying a requirement was found
// for a specific interpreter binary.
type InterpreterCacheEntry struct {
	Key         string   `json:"key"`
	Binary      string   `json:"binary"`
	Identity    Identity `json:"identity"`
	Requirement string   `json:"requirement"`
	Extra       Extra    `json:"extra"`
	Location    string   `json:"location"`
}
