package common

// UnknownStr is the String value of out-of-range enum constants.
const UnknownStr = "unknown"
