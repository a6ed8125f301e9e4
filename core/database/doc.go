// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (production) or
// SQLite (tests, small deployments) connections based on the application's
// configuration.
//
// # Connect
//
// The generic Connect function establishes a connection to the database.
// The UID registry feature builds its schema on top of it via AutoMigrate.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema, used by the
// status command to verify that the registry tables look as expected.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "registry_entries")
package database
