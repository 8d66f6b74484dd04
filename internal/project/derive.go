package project

import "strings"

// Placeholder defaults used when a field is not supplied.
//
// DefaultDBOwnerPword is a placeholder for local scaffolding only. Generated
// projects must replace it before any non-test use.
const (
	DefaultAuthorName      = "Test User"
	DefaultAuthorEmail     = "test@example.com"
	DefaultDBOwnerPword    = "password"
	DefaultDenoPackageName = "@gwa"

	appIdentifierPrefix = "com.example."
	dbOwnerSuffix       = "_owner"
)

// DeriveAppIdentifier returns "com.example." followed by the lowercased
// project name with hyphens removed. Underscores and dots are kept.
func DeriveAppIdentifier(projectName string) string {
	return appIdentifierPrefix + strings.ReplaceAll(strings.ToLower(projectName), "-", "")
}

// DeriveDBName lowercases the project name and turns hyphens into underscores.
func DeriveDBName(projectName string) string {
	return strings.ReplaceAll(strings.ToLower(projectName), "-", "_")
}

// DeriveDBOwner returns the owner role for a resolved database name.
func DeriveDBOwner(dbName string) string {
	return dbName + dbOwnerSuffix
}
