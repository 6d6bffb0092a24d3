// Package testdb provides databases for tests that exercise the SQL store.
//
// OpenSQLite always succeeds: it returns a private in-memory SQLite database
// with the schema applied. OpenPostgres connects to the database named by
// HBNB_TEST_DATABASE_URL (or DATABASE_URL), applies the schema, and empties
// every table before handing it to the test. Tests using it are skipped when
// neither variable is set.
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.OpenPostgres(t)
//	    st, err := sqlstore.New(db, sqlstore.DriverPostgres)
//	    require.NoError(t, err)
//	    ...
//	}
package testdb
