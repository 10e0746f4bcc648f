package db

import "database/sql"

// MigrateUp applies the schema. All statements are idempotent so the
// migration can run unconditionally at startup.
func MigrateUp(database *sql.DB) error {
	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id              SERIAL PRIMARY KEY,
    username        VARCHAR(20) NOT NULL UNIQUE,
    password        VARCHAR(40) NOT NULL,
    date_registered TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id          SERIAL PRIMARY KEY,
    user_id     INTEGER NOT NULL REFERENCES users(id),
    title       TEXT NOT NULL,
    text        TEXT NOT NULL,
    date_posted TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// ORDER BY date_posted DESC is used by every listing query
		`CREATE INDEX IF NOT EXISTS idx_articles_date_posted ON articles(date_posted DESC)`,
		// per-user article listing
		`CREATE INDEX IF NOT EXISTS idx_articles_user_id ON articles(user_id)`,
	}
	for _, idx := range indexes {
		if _, err := database.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown drops the schema in reverse dependency order.
// Use with caution: this deletes all data.
func MigrateDown(database *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_articles_user_id`,
		`DROP INDEX IF EXISTS idx_articles_date_posted`,
		`DROP TABLE IF EXISTS articles`,
		`DROP TABLE IF EXISTS users`,
	}
	for _, stmt := range dropStatements {
		if _, err := database.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
