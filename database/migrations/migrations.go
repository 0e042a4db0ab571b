// Package migrations holds the schema migrations. Each migration
// registers itself from init(); importing this package for side effects
// is enough to make them available to the runner:
//
//	import _ "github.com/ecofinds/ecofinds/database/migrations"
package migrations
