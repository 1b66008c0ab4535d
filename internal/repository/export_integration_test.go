//go:build integration

package repository

import "gorm.io/gorm"

// Shared with the external test package, which also runs under TestMain.
func IntegrationDB() *gorm.DB { return testDB }

func CleanTables() { cleanTables() }
