package redis

// Key prefix for all panel data
const keyPrefix = "quadro"

func roomsKey() string    { return keyPrefix + ":rooms" }
func eventsKey() string   { return keyPrefix + ":events" }
func totalsKey() string   { return keyPrefix + ":totals" }
func inactiveKey() string { return keyPrefix + ":inactive" }
func accountsKey() string { return keyPrefix + ":accounts" }
func auditKey() string    { return keyPrefix + ":audit" }
