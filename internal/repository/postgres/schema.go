package postgres

import "context"

const schemaDDL = `
CREATE TABLE IF NOT EXISTS users (
	id         UUID PRIMARY KEY,
	user_name  TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	user_email TEXT NOT NULL,
	phone      TEXT,
	role       TEXT NOT NULL CHECK (role IN ('Admin', 'User'))
);

CREATE TABLE IF NOT EXISTS tasks (
	id          SERIAL PRIMARY KEY,
	task_name   TEXT,
	description TEXT,
	status      TEXT NOT NULL DEFAULT 'Pending',
	user_id     TEXT NOT NULL
);
`

// EnsureSchema creates the tables when they are missing. tasks.user_id has
// no foreign key: owners are back-references only.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schemaDDL); err != nil {
		return errFailedEnsureSchema(err)
	}
	return nil
}
