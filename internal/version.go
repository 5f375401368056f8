package internal

// Version is the current release of pronounce.
const Version = "0.1.0"
