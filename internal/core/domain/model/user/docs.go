// Package user contains the account aggregate: a User identified by a unique
// email, carrying a hashed password and a set of Roles that drive authorization
// decisions elsewhere in the system.
package user
