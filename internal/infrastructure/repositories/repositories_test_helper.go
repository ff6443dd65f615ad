package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createApplicationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE merchant_applications (
		id TEXT PRIMARY KEY,
		merchant_name TEXT NOT NULL,
		merchant_email TEXT NOT NULL,
		otp TEXT NOT NULL,
		application_data TEXT,
		status TEXT NOT NULL DEFAULT 'incomplete',
		action_reason TEXT,
		actioned_by TEXT,
		actioned_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createDocumentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE merchant_documents (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL,
		document_type TEXT NOT NULL,
		file_name TEXT NOT NULL,
		file_path TEXT NOT NULL,
		file_type TEXT NOT NULL,
		file_size INTEGER NOT NULL,
		uploaded_by TEXT,
		effective_date DATETIME,
		expiration_date DATETIME,
		created_at DATETIME
	);`)
}

func createActionLogTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE applications_action_log (
		id TEXT PRIMARY KEY,
		application_id TEXT NOT NULL,
		action TEXT NOT NULL,
		reason TEXT NOT NULL,
		actioned_by TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createFieldEditTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE field_edit_history (
		id TEXT PRIMARY KEY,
		table_name TEXT NOT NULL,
		record_id TEXT NOT NULL,
		field_name TEXT NOT NULL,
		old_value TEXT,
		new_value TEXT,
		changed_by TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE admin_users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createIndustryTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE industries (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		description TEXT,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
